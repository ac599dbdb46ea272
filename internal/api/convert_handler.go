package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/shaiso/liftsheet/internal/convert"
	"github.com/shaiso/liftsheet/internal/sheet"
)

const (
	// workbookMIME — Content-Type книги .xlsx.
	workbookMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// workbookName — имя файла в Content-Disposition.
	workbookName = "workout.xlsx"

	// multipartMemory — лимит памяти для разбора multipart формы,
	// остальное уходит во временные файлы.
	multipartMemory = 8 << 20
)

// Поля multipart формы, в которых принимаются изображения.
// "files[]" — историческое имя поля, "files" принимается для удобства.
var fileFields = []string{"files[]", "files"}

// Convert принимает multipart загрузку изображений и возвращает книгу .xlsx.
// POST /api/v1/convert[?format=json]
//
// С format=json вместо книги возвращается распознанный batch в JSON.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		// multipart не всегда сохраняет цепочку ошибок MaxBytesReader,
		// поэтому дополнительно сверяем заявленный размер тела с лимитом.
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || r.ContentLength > h.maxUploadBytes {
			RequestTooLarge(w, fmt.Sprintf("upload exceeds %d bytes", h.maxUploadBytes))
			return
		}
		BadRequest(w, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	files, err := readUploads(r.MultipartForm)
	if err != nil {
		InternalError(w, h.logger, err)
		return
	}

	batch, err := h.service.ConvertBatch(r.Context(), files)
	if HandleConvertError(w, h.logger, err) {
		return
	}

	w.Header().Set("X-Batch-ID", batch.ID.String())

	if r.URL.Query().Get("format") == "json" {
		Success(w, BatchFromDomain(batch))
		return
	}

	workbook, err := sheet.Build(batch)
	if err != nil {
		InternalError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", workbookMIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", workbookName))
	w.Header().Set("Content-Length", fmt.Sprint(len(workbook)))
	w.WriteHeader(http.StatusOK)
	w.Write(workbook)
}

// readUploads собирает файлы из multipart формы в порядке загрузки.
func readUploads(form *multipart.Form) ([]convert.File, error) {
	var files []convert.File

	for _, field := range fileFields {
		for _, header := range form.File[field] {
			data, err := readUpload(header)
			if err != nil {
				return nil, fmt.Errorf("read upload %s: %w", header.Filename, err)
			}
			files = append(files, convert.File{Name: header.Filename, Data: data})
		}
	}

	return files, nil
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
