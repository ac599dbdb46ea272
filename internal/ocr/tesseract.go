package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine — локальный OCR через Tesseract (gosseract).
//
// Требует установленного tesseract-ocr и языковых пакетов.
// Позволяет работать без облачных учётных данных.
type TesseractEngine struct {
	languages []string
}

// NewTesseractEngine создаёт движок с указанными языками.
// Пустой список — английский по умолчанию.
func NewTesseractEngine(languages []string) *TesseractEngine {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &TesseractEngine{languages: languages}
}

// Name возвращает имя движка.
func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize извлекает текст из изображения.
//
// gosseract.Client не потокобезопасен, поэтому клиент создаётся
// на каждый вызов. Tesseract не поддерживает отмену, ctx проверяется
// только до запуска распознавания.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", ErrEmptyImage
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.languages...); err != nil {
		return "", fmt.Errorf("%w: set language: %v", ErrRecognize, err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("%w: set image: %v", ErrRecognize, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognize, err)
	}
	return text, nil
}
