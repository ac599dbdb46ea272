package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Значения по умолчанию.
const (
	DefaultListenAddr      = ":8080"
	DefaultMaxUploadBytes  = 10 << 20
	DefaultOCREngine       = "vision"
	DefaultCredentialsFile = "/etc/secrets/google_credentials.json"
	DefaultOCRTimeout      = 30 * time.Second
)

// Config — конфигурация сервиса liftsheet-api.
type Config struct {
	// ListenAddr — адрес HTTP сервера (":8080").
	ListenAddr string

	// MaxUploadBytes — лимит размера тела запроса загрузки.
	MaxUploadBytes int64

	// OCR — настройки распознавания.
	OCR OCRConfig
}

// OCRConfig — настройки OCR-движков.
type OCRConfig struct {
	// Engine — активный движок: "vision" или "tesseract".
	Engine string

	// CredentialsFile — путь к JSON service account для Vision.
	CredentialsFile string

	// Languages — языки распознавания Tesseract ("eng", "rus", ...).
	Languages []string

	// Timeout — таймаут одного OCR-запроса.
	Timeout time.Duration
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	return Config{
		ListenAddr:     DefaultListenAddr,
		MaxUploadBytes: DefaultMaxUploadBytes,
		OCR: OCRConfig{
			Engine:          DefaultOCREngine,
			CredentialsFile: DefaultCredentialsFile,
			Languages:       []string{"eng"},
			Timeout:         DefaultOCRTimeout,
		},
	}
}

// fileConfig — сырое содержимое TOML файла.
type fileConfig struct {
	ListenAddr     string `toml:"listen_addr"`
	MaxUploadBytes int64  `toml:"max_upload_bytes"`
	OCR            struct {
		Engine          string   `toml:"engine"`
		CredentialsFile string   `toml:"credentials_file"`
		Languages       []string `toml:"languages"`
		Timeout         string   `toml:"timeout"`
	} `toml:"ocr"`
}

// Load читает конфигурацию из TOML файла и применяет переменные окружения.
//
// path == "" — файл не читается, используются значения по умолчанию
// и окружение. Переменные окружения имеют приоритет над файлом:
//   - LIFTSHEET_ADDR — адрес сервера
//   - LIFTSHEET_OCR_ENGINE — активный движок
//   - GOOGLE_APPLICATION_CREDENTIALS — файл учётных данных Vision
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		var raw fileConfig
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}

		if meta.IsDefined("listen_addr") {
			cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
		}
		if meta.IsDefined("max_upload_bytes") && raw.MaxUploadBytes > 0 {
			cfg.MaxUploadBytes = raw.MaxUploadBytes
		}
		if meta.IsDefined("ocr", "engine") {
			cfg.OCR.Engine = strings.TrimSpace(raw.OCR.Engine)
		}
		if meta.IsDefined("ocr", "credentials_file") {
			cfg.OCR.CredentialsFile = strings.TrimSpace(raw.OCR.CredentialsFile)
		}
		if meta.IsDefined("ocr", "languages") {
			cfg.OCR.Languages = normalizeLanguages(raw.OCR.Languages)
		}
		if meta.IsDefined("ocr", "timeout") {
			d, err := time.ParseDuration(strings.TrimSpace(raw.OCR.Timeout))
			if err != nil {
				return Config{}, fmt.Errorf("parse ocr.timeout: %w", err)
			}
			cfg.OCR.Timeout = d
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации.
func (c *Config) Validate() error {
	switch c.OCR.Engine {
	case "vision", "tesseract":
	default:
		return fmt.Errorf("unknown ocr engine: %q", c.OCR.Engine)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LIFTSHEET_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("LIFTSHEET_OCR_ENGINE"); v != "" {
		cfg.OCR.Engine = v
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
		cfg.OCR.CredentialsFile = v
	}
}

func normalizeLanguages(in []string) []string {
	out := make([]string, 0, len(in))
	for _, lang := range in {
		v := strings.TrimSpace(lang)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
