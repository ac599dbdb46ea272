package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// --- Response types (дублируются из api/dto.go, CLI не импортирует internal/api) ---

// RowResponse — строка таблицы из API.
type RowResponse struct {
	Exercise string   `json:"exercise"`
	Sets     []string `json:"sets"`
	Note     string   `json:"note,omitempty"`
}

// TableResponse — таблица тренировки из API.
type TableResponse struct {
	Title      string        `json:"title"`
	Header     []string      `json:"header"`
	Rows       []RowResponse `json:"rows"`
	MaxSets    int           `json:"max_sets"`
	SourceFile string        `json:"source_file,omitempty"`
}

// BatchResponse — результат конвертации из API.
type BatchResponse struct {
	ID        string          `json:"id"`
	Tables    []TableResponse `json:"tables"`
	CreatedAt string          `json:"created_at"`
}

// EnginesResponse — список OCR-движков из API.
type EnginesResponse struct {
	Active    string   `json:"active"`
	Available []string `json:"available"`
}

// Workbook — скачанная книга .xlsx.
type Workbook struct {
	// BatchID — идентификатор загрузки из заголовка X-Batch-ID.
	BatchID string

	// Data — сериализованная книга.
	Data []byte
}

// --- API response wrappers ---

type dataResponse struct {
	Data json.RawMessage `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// --- Client ---

// Client — HTTP-клиент для liftsheet API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
// Таймаут щедрый: облачный OCR на пачке снимков может работать долго.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// Convert загружает изображения и возвращает книгу .xlsx.
func (c *Client) Convert(paths []string) (*Workbook, error) {
	resp, err := c.upload(paths, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}

	return &Workbook{
		BatchID: resp.Header.Get("X-Batch-ID"),
		Data:    data,
	}, nil
}

// ConvertJSON загружает изображения и возвращает распознанный batch.
func (c *Client) ConvertJSON(paths []string) (*BatchResponse, error) {
	resp, err := c.upload(paths, "json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var wrapper dataResponse
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var batch BatchResponse
	if err := json.Unmarshal(wrapper.Data, &batch); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	return &batch, nil
}

// Engines возвращает список OCR-движков сервера.
func (c *Client) Engines() (*EnginesResponse, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/api/v1/engines")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var wrapper dataResponse
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var engines EnginesResponse
	if err := json.Unmarshal(wrapper.Data, &engines); err != nil {
		return nil, fmt.Errorf("decode engines: %w", err)
	}
	return &engines, nil
}

// Health проверяет доступность сервера.
func (c *Client) Health() error {
	resp, err := c.httpClient.Get(c.baseURL + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server unhealthy: %s", resp.Status)
	}
	return nil
}

// upload собирает multipart форму из файлов и выполняет запрос.
func (c *Client) upload(paths []string, format string) (*http.Response, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, path := range paths {
		if err := addFile(writer, path); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	url := c.baseURL + "/api/v1/convert"
	if format != "" {
		url += "?format=" + format
	}

	req, err := http.NewRequest(http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.httpClient.Do(req)
}

func addFile(writer *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	part, err := writer.CreateFormFile("files[]", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}
	return nil
}

// decodeError извлекает сообщение об ошибке из ответа API.
func decodeError(resp *http.Response) error {
	var apiErr errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("%s: %s", apiErr.Error.Code, apiErr.Error.Message)
	}
	return fmt.Errorf("unexpected status: %s", resp.Status)
}
