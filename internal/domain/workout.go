package domain

// Row — одна строка таблицы тренировки (одно упражнение).
//
// Sets хранит "сырые" значения повторений как строки: OCR может
// вернуть пустую ячейку, и мы сохраняем её как "" вместо нуля.
type Row struct {
	// Exercise — название упражнения (текст слева от двоеточия).
	Exercise string `json:"exercise"`

	// Sets — повторения по подходам. Дополняется пустыми строками
	// до Table.MaxSets, чтобы все строки имели одинаковую ширину.
	Sets []string `json:"sets"`

	// Note — пометка из скобок в строке подходов
	// (например, "drop set" из "10/8/6 (drop set)").
	Note string `json:"note,omitempty"`
}

// Table — распознанная таблица одной тренировки (один снимок журнала).
type Table struct {
	// Title — заголовок блока: "<дата> - <тип тренировки>",
	// например "12 Mar - Upper Body".
	Title string `json:"title"`

	// Header — заголовки колонок: "Exercise", "Set 1".."Set N", "Extra Info".
	Header []string `json:"header"`

	// Rows — строки упражнений в порядке появления в тексте.
	Rows []Row `json:"rows"`

	// MaxSets — максимальное число подходов среди всех упражнений таблицы.
	MaxSets int `json:"max_sets"`

	// SourceFile — имя загруженного файла, из которого получена таблица.
	SourceFile string `json:"source_file,omitempty"`

	// RawText — полный текст, возвращённый OCR. Сохраняется для отладки
	// и для JSON-ответа API.
	RawText string `json:"raw_text,omitempty"`
}

// Empty сообщает, что таблица не содержит ни одной строки упражнений.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}
