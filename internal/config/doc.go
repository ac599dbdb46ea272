// Package config загружает конфигурацию сервиса из TOML файла
// с переопределением через переменные окружения.
package config
