package ocr

import (
	"context"
	"fmt"
	"time"

	vision "cloud.google.com/go/vision/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

const defaultVisionTimeout = 30 * time.Second

// VisionEngine — OCR через Google Cloud Vision API.
//
// Использует text detection: первая аннотация ответа содержит
// весь распознанный текст изображения целиком, её и возвращаем.
type VisionEngine struct {
	client  *vision.ImageAnnotatorClient
	timeout time.Duration
}

// VisionConfig — параметры создания VisionEngine.
type VisionConfig struct {
	// CredentialsFile — путь к JSON-файлу service account.
	// Пустое значение — Application Default Credentials.
	CredentialsFile string

	// Timeout — таймаут одного запроса к API. Default: 30s.
	Timeout time.Duration
}

// NewVisionEngine создаёт движок и устанавливает соединение с API.
func NewVisionEngine(ctx context.Context, cfg VisionConfig) (*VisionEngine, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultVisionTimeout
	}

	return &VisionEngine{client: client, timeout: timeout}, nil
}

// Name возвращает имя движка.
func (e *VisionEngine) Name() string { return "vision" }

// Recognize выполняет text detection и возвращает полный текст изображения.
func (e *VisionEngine) Recognize(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", ErrEmptyImage
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	annotations, err := e.client.DetectTexts(ctx, &visionpb.Image{Content: image}, nil, 10)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognize, err)
	}

	// Первая аннотация — весь текст, остальные — отдельные слова.
	if len(annotations) == 0 {
		return "", nil
	}
	return annotations[0].GetDescription(), nil
}

// Close закрывает соединение с API.
func (e *VisionEngine) Close() error {
	return e.client.Close()
}
