package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus метрики конвертера.
//
// Регистрируются в DefaultRegisterer через promauto,
// экспортируются на /metrics endpoint (см. cmd/liftsheet-api).
var (
	// ConversionsTotal — количество успешно обработанных загрузок.
	ConversionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "liftsheet_conversions_total",
		Help: "Total upload batches converted to a workbook",
	})

	// ConversionErrorsTotal — количество загрузок, завершившихся ошибкой.
	ConversionErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "liftsheet_conversion_errors_total",
		Help: "Total upload batches that failed to convert",
	})

	// UploadFilesTotal — количество принятых файлов изображений.
	UploadFilesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "liftsheet_upload_files_total",
		Help: "Total image files received in upload batches",
	})

	// OCRRequestsTotal — количество обращений к OCR по движкам и результату.
	OCRRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "liftsheet_ocr_requests_total",
		Help: "Total OCR recognize calls by engine and outcome",
	}, []string{"engine", "outcome"})

	// OCRDuration — длительность одного OCR-запроса.
	OCRDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "liftsheet_ocr_duration_seconds",
		Help:    "Duration of a single OCR recognize call",
		Buckets: prometheus.DefBuckets,
	})
)
