package ocr

import "errors"

// Общие ошибки OCR.
var (
	// ErrUnknownEngine — запрошен незарегистрированный движок.
	ErrUnknownEngine = errors.New("unknown ocr engine")

	// ErrRecognize — провайдер не смог распознать изображение.
	ErrRecognize = errors.New("ocr recognize failed")

	// ErrEmptyImage — на распознавание передан пустой файл.
	ErrEmptyImage = errors.New("empty image")
)
