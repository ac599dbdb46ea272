package domain

import (
	"time"

	"github.com/google/uuid"
)

// Batch — результат одной загрузки: набор таблиц,
// по одной на каждый загруженный снимок.
//
// Batch живёт только в рамках HTTP-запроса — система не хранит
// долговременного состояния.
type Batch struct {
	// ID — уникальный идентификатор загрузки. Возвращается клиенту
	// в заголовке X-Batch-ID и используется в логах.
	ID uuid.UUID `json:"id"`

	// Tables — таблицы в порядке загрузки файлов.
	Tables []Table `json:"tables"`

	// CreatedAt — время начала обработки.
	CreatedAt time.Time `json:"created_at"`
}

// NewBatch создаёт пустой batch с новым ID.
func NewBatch() *Batch {
	return &Batch{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}
