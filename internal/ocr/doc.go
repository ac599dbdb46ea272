// Package ocr абстрагирует распознавание текста на изображениях.
//
// Engine — единый интерфейс для провайдеров OCR.
// Реализации:
//   - VisionEngine — Google Cloud Vision API (облачный, основной)
//   - TesseractEngine — локальный Tesseract (работает без облака)
//
// Registry позволяет выбирать движок по имени из конфигурации.
package ocr
