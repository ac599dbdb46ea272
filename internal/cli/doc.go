// Package cli реализует команды инструмента liftsheet:
// загрузку изображений журнала тренировок на сервер конвертации
// и сохранение итоговой книги .xlsx.
//
// CLI общается с сервером только через HTTP API и не импортирует
// internal/api: response-типы продублированы в client.go.
package cli
