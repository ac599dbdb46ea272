package transcribe

import (
	"fmt"
	"strings"

	"github.com/shaiso/liftsheet/internal/domain"
)

// Сокращения месяцев для эвристики поиска даты.
var monthNames = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// Фоллбэки, когда эвристика не нашла заголовок или дату.
const (
	fallbackTitle = "Workout"
	fallbackDate  = "Unknown Date"
)

// Transcribe превращает текст, полученный от OCR, в таблицу тренировки.
//
// Текст журнала тренировок слабо структурирован, поэтому разбор
// построен на эвристиках:
//   - точки заменяются на двоеточия (частая ошибка OCR);
//   - строка упражнения содержит '/' и делится двоеточием на
//     название и список подходов;
//   - подходы разделены '/', нечисловые фрагменты отбрасываются;
//   - пометка в скобках после подходов сохраняется в Extra Info.
//
// Пустой текст даёт пустую таблицу с фоллбэк-заголовком, не ошибку.
func Transcribe(text string) domain.Table {
	rows, maxSets := parseRows(text)

	header := make([]string, 0, maxSets+2)
	header = append(header, "Exercise")
	for i := 1; i <= maxSets; i++ {
		header = append(header, fmt.Sprintf("Set %d", i))
	}
	header = append(header, "Extra Info")

	return domain.Table{
		Title:   TitleAndDate(text),
		Header:  header,
		Rows:    rows,
		MaxSets: maxSets,
		RawText: text,
	}
}

// parseRows извлекает строки упражнений и максимальное число подходов.
//
// Два прохода: сначала считаем максимум подходов по всем строкам,
// затем собираем строки, дополняя подходы пустыми значениями до максимума.
func parseRows(text string) ([]domain.Row, int) {
	lines := strings.Split(text, "\n")

	maxSets := 0
	for _, line := range lines {
		_, sets, _, ok := splitExerciseLine(line)
		if !ok {
			continue
		}
		if len(sets) > maxSets {
			maxSets = len(sets)
		}
	}

	var rows []domain.Row
	for _, line := range lines {
		name, sets, note, ok := splitExerciseLine(line)
		if !ok {
			continue
		}

		for len(sets) < maxSets {
			sets = append(sets, "")
		}

		rows = append(rows, domain.Row{
			Exercise: name,
			Sets:     sets,
			Note:     note,
		})
	}

	return rows, maxSets
}

// splitExerciseLine разбирает одну строку вида
//
//	"Bench Press: 10/8/6 (drop set)"
//
// на название, подходы и пометку. ok=false, если строка
// не похожа на упражнение.
func splitExerciseLine(line string) (name string, sets []string, note string, ok bool) {
	// OCR часто путает точку и двоеточие.
	line = strings.ReplaceAll(line, ".", ":")

	if !strings.Contains(line, "/") {
		return "", nil, "", false
	}

	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return "", nil, "", false
	}

	name = strings.TrimSpace(parts[0])
	segment := parts[1]

	// Пометка в скобках вырезается из сегмента до разбора подходов,
	// иначе она "съедает" последний подход ("6 (drop set)" — не число).
	segment, note = extractNote(segment)

	for _, s := range strings.Split(segment, "/") {
		s = strings.TrimSpace(s)
		if s == "" || isDigits(s) {
			sets = append(sets, s)
		}
	}

	return name, sets, note, true
}

// extractNote возвращает сегмент без первой скобочной группы и её содержимое.
func extractNote(segment string) (string, string) {
	open := strings.Index(segment, "(")
	if open < 0 {
		return segment, ""
	}
	end := strings.Index(segment[open:], ")")
	if end < 0 {
		return segment[:open], strings.TrimSpace(segment[open+1:])
	}
	note := segment[open+1 : open+end]
	rest := segment[:open] + segment[open+end+1:]
	return rest, strings.TrimSpace(note)
}

// isDigits сообщает, что строка непустая и состоит только из цифр.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// TitleAndDate извлекает из текста дату и тип тренировки
// и склеивает их в заголовок блока: "<дата> - <тип>".
//
// Дата — строка, содержащая "date", сокращение месяца или цифру.
// Строки упражнений тоже содержат цифры, поэтому кандидатами
// в даты не считаются. Тип — первая строка без цифр и без '/'.
func TitleAndDate(text string) string {
	var title, date string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)

		_, _, _, isExercise := splitExerciseLine(trimmed)
		if !isExercise && looksLikeDate(lower) {
			date = trimmed
		}

		if title == "" && !containsDigit(lower) && !strings.Contains(lower, "/") {
			title = trimmed
		}

		if title != "" && date != "" {
			break
		}
	}

	if title == "" {
		title = fallbackTitle
	}
	if date == "" {
		date = fallbackDate
	}

	return fmt.Sprintf("%s - %s", date, title)
}

func looksLikeDate(lower string) bool {
	if strings.Contains(lower, "date") {
		return true
	}
	for _, month := range monthNames {
		if strings.Contains(lower, month) {
			return true
		}
	}
	return containsDigit(lower)
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
