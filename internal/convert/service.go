package convert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shaiso/liftsheet/internal/domain"
	"github.com/shaiso/liftsheet/internal/ocr"
	"github.com/shaiso/liftsheet/internal/telemetry"
	"github.com/shaiso/liftsheet/internal/transcribe"
)

// File — одно загруженное изображение журнала тренировок.
type File struct {
	// Name — имя файла, как его прислал клиент.
	Name string

	// Data — сырые байты изображения.
	Data []byte
}

// Service — конвейер конвертации: OCR → разбор текста → таблицы.
type Service struct {
	engine ocr.Engine
	logger *slog.Logger
}

// NewService создаёт сервис конвертации поверх выбранного OCR-движка.
func NewService(engine ocr.Engine, logger *slog.Logger) *Service {
	return &Service{engine: engine, logger: logger}
}

// EngineName возвращает имя активного OCR-движка.
func (s *Service) EngineName() string {
	return s.engine.Name()
}

// ConvertBatch обрабатывает файлы по порядку и возвращает batch
// с таблицей на каждый файл.
//
// Ошибка OCR на любом файле прерывает обработку всего batch.
// Пустой текст от OCR ошибкой не считается: файл даёт пустую таблицу.
func (s *Service) ConvertBatch(ctx context.Context, files []File) (*domain.Batch, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	batch := domain.NewBatch()
	logger := telemetry.WithBatchID(s.logger, batch.ID.String())
	logger.Info("converting batch", "files", len(files), "engine", s.engine.Name())

	for _, file := range files {
		telemetry.UploadFilesTotal.Inc()
		fileLog := telemetry.WithFile(logger, file.Name)

		text, err := s.recognize(ctx, file.Data)
		if err != nil {
			fileLog.Error("ocr failed", "error", err)
			telemetry.ConversionErrorsTotal.Inc()
			return nil, fmt.Errorf("recognize %s: %w", file.Name, err)
		}

		table := transcribe.Transcribe(text)
		table.SourceFile = file.Name

		fileLog.Info("file transcribed",
			"title", table.Title,
			"rows", len(table.Rows),
			"max_sets", table.MaxSets,
		)

		batch.Tables = append(batch.Tables, table)
	}

	telemetry.ConversionsTotal.Inc()
	logger.Info("batch converted", "tables", len(batch.Tables))

	return batch, nil
}

// recognize вызывает OCR и снимает метрики вызова.
func (s *Service) recognize(ctx context.Context, image []byte) (string, error) {
	start := time.Now()
	text, err := s.engine.Recognize(ctx, image)
	telemetry.OCRDuration.Observe(time.Since(start).Seconds())

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	telemetry.OCRRequestsTotal.WithLabelValues(s.engine.Name(), outcome).Inc()

	return text, err
}
