// Package transcribe превращает слабоструктурированный текст OCR
// в табличные записи тренировок: дата, упражнение, подходы, пометки.
package transcribe
