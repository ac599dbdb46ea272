package convert

import "errors"

// Ошибки конвейера конвертации.
var (
	// ErrNoFiles — в загрузке нет ни одного файла.
	ErrNoFiles = errors.New("no files received")
)
