// Package convert реализует конвейер конвертации загрузки:
// изображения → OCR → разбор текста → таблицы тренировок.
package convert
