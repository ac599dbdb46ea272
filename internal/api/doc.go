// Package api содержит HTTP API сервер.
//
// Структура:
//   - handler.go         — Handler с DI (сервис конвертации, реестр OCR, logger)
//   - routes.go          — регистрация маршрутов
//   - middleware.go      — middleware (logging, recovery, CORS)
//   - response.go        — унифицированные JSON-ответы и обработка ошибок
//   - dto.go             — Data Transfer Objects (response)
//   - convert_handler.go — загрузка изображений и выдача книги .xlsx
//   - info_handler.go    — корневой маршрут и список OCR-движков
//
// API предоставляет единственную операцию: конвертацию загруженных
// снимков журнала тренировок в книгу .xlsx.
package api
