package ocr

import (
	"context"
	"fmt"
	"sort"
)

// Engine — интерфейс для распознавания текста на изображении.
//
// Реализации: VisionEngine (Google Cloud Vision), TesseractEngine (локальный
// Tesseract). image — сырые байты файла (JPEG/PNG), формат определяет
// сам движок.
//
// Пустая строка без ошибки означает, что текст на изображении не найден.
type Engine interface {
	// Name возвращает имя движка ("vision", "tesseract").
	Name() string

	// Recognize извлекает весь текст с изображения одной строкой,
	// строки разделены '\n'.
	Recognize(ctx context.Context, image []byte) (string, error)
}

// Registry — реестр OCR-движков по имени.
type Registry struct {
	engines map[string]Engine
}

// NewRegistry создаёт пустой реестр.
//
// Движки регистрируются при старте сервиса из конфигурации:
// движок, требующий недоступных учётных данных, просто не попадает в реестр.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]Engine)}
}

// Register добавляет движок в реестр.
func (r *Registry) Register(engine Engine) {
	r.engines[engine.Name()] = engine
}

// Get возвращает движок по имени.
func (r *Registry) Get(name string) (Engine, error) {
	engine, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, name)
	}
	return engine, nil
}

// Names возвращает имена зарегистрированных движков в алфавитном порядке.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
