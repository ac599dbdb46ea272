package sheet

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/shaiso/liftsheet/internal/domain"
)

const (
	// SheetName — имя единственного листа книги.
	SheetName = "Workout Data"

	// headerFill — цвет заливки строки заголовков.
	headerFill = "00A9E0"

	// blockSpacing — число пустых строк между блоками таблиц.
	blockSpacing = 3

	// widthPadding — запас ширины колонки сверх самой длинной ячейки.
	widthPadding = 2
)

// Build собирает книгу .xlsx из batch и возвращает её сериализованной.
//
// Все таблицы пишутся на один лист "Workout Data" блоками:
// объединённая строка заголовка (дата и тип тренировки), строка
// названий колонок, строки данных. Между блоками — пустые строки.
func Build(batch *domain.Batch) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	colWidths := map[int]int{}
	row := 1

	for _, table := range batch.Tables {
		row, err = writeBlock(f, styles, &table, row, colWidths)
		if err != nil {
			return nil, fmt.Errorf("write block %q: %w", table.Title, err)
		}
	}

	if err := applyColumnWidths(f, colWidths); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// blockStyles — идентификаторы стилей, создаваемых один раз на книгу.
type blockStyles struct {
	title  int
	header int
	data   int
}

func newStyles(f *excelize.File) (blockStyles, error) {
	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return blockStyles{}, fmt.Errorf("title style: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Border:    thin,
	})
	if err != nil {
		return blockStyles{}, fmt.Errorf("header style: %w", err)
	}

	data, err := f.NewStyle(&excelize.Style{Border: thin})
	if err != nil {
		return blockStyles{}, fmt.Errorf("data style: %w", err)
	}

	return blockStyles{title: title, header: header, data: data}, nil
}

// writeBlock пишет один блок таблицы начиная со строки row
// и возвращает строку, с которой должен начаться следующий блок.
func writeBlock(f *excelize.File, styles blockStyles, table *domain.Table, row int, colWidths map[int]int) (int, error) {
	width := len(table.Header)
	if width == 0 {
		width = 1
	}

	// Заголовок блока: объединённая ячейка на всю ширину таблицы.
	titleCell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetCellValue(SheetName, titleCell, table.Title); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(SheetName, titleCell, titleCell, styles.title); err != nil {
		return 0, err
	}
	endCell, _ := excelize.CoordinatesToCellName(width, row)
	if width > 1 {
		if err := f.MergeCell(SheetName, titleCell, endCell); err != nil {
			return 0, err
		}
	}
	row++

	// Строка названий колонок.
	for col, name := range table.Header {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return 0, err
		}
		trackWidth(colWidths, col+1, name)
	}
	if len(table.Header) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(width, row)
		if err := f.SetCellStyle(SheetName, first, last, styles.header); err != nil {
			return 0, err
		}
	}
	row++

	// Строки данных: Exercise | Set 1..N | Extra Info.
	for _, r := range table.Rows {
		cells := make([]any, 0, width)
		cells = append(cells, r.Exercise)
		for _, s := range r.Sets {
			cells = append(cells, coerceSet(s))
		}
		cells = append(cells, r.Note)

		for col, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return 0, err
			}
			trackWidth(colWidths, col+1, fmt.Sprint(v))
		}

		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(cells), row)
		if err := f.SetCellStyle(SheetName, first, last, styles.data); err != nil {
			return 0, err
		}
		row++
	}

	return row + blockSpacing, nil
}

// coerceSet превращает числовые значения подходов в числа,
// чтобы в книге с ними можно было считать. Остальное — как есть.
func coerceSet(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}

func trackWidth(colWidths map[int]int, col int, value string) {
	if len(value) > colWidths[col] {
		colWidths[col] = len(value)
	}
}

func applyColumnWidths(f *excelize.File, colWidths map[int]int) error {
	for col, width := range colWidths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return fmt.Errorf("column %d: %w", col, err)
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width+widthPadding)); err != nil {
			return fmt.Errorf("set width %s: %w", name, err)
		}
	}
	return nil
}
