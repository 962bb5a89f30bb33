package grid

import (
	"fmt"
	"io"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet = "Багаж"
	// ширина колонки в пикселях на один символ Excel
	pixelsPerChar = 7.0
)

// ExportContentType - MIME тип выгрузки
const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// statusFills - цвет заливки ячейки статуса в выгрузке
var statusFills = map[domain.Status]string{
	domain.StatusInTransit:        "#FFF3CD",
	domain.StatusDelivered:        "#D4EDDA",
	domain.StatusAwaitingDispatch: "#E2E3E5",
	domain.StatusCancelled:        "#F8D7DA",
	domain.StatusRegistering:      "#D1ECF1",
}

type exportStyles struct {
	header int
	date   int
	byFmt  map[string]int
	status map[domain.Status]int
}

// WriteXLSX записывает записи в книгу Excel с колонками в порядке таблицы
func WriteXLSX(w io.Writer, records []domain.CargoRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	styles, err := newExportStyles(f)
	if err != nil {
		return err
	}

	for i := range columns {
		col := &columns[i]
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(exportSheet, name, name, float64(col.Width)/pixelsPerChar); err != nil {
			return fmt.Errorf("failed to set width of %s: %w", col.Field, err)
		}
		cell := name + "1"
		if err := f.SetCellValue(exportSheet, cell, col.Title); err != nil {
			return err
		}
		if err := f.SetCellStyle(exportSheet, cell, cell, styles.header); err != nil {
			return err
		}
	}

	for r := range records {
		rec := &records[r]
		for i := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := writeCell(f, styles, cell, &columns[i], rec); err != nil {
				return fmt.Errorf("failed to write %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeCell(f *excelize.File, styles *exportStyles, cell string, col *Column, rec *domain.CargoRecord) error {
	switch {
	case col.number != nil:
		v := *col.number(rec)
		if !v.Valid {
			return nil
		}
		if err := f.SetCellValue(exportSheet, cell, v.Decimal.InexactFloat64()); err != nil {
			return err
		}
		return f.SetCellStyle(exportSheet, cell, cell, styles.byFmt[col.Pattern])

	case col.count != nil:
		v := *col.count(rec)
		if v == nil {
			return nil
		}
		if err := f.SetCellValue(exportSheet, cell, *v); err != nil {
			return err
		}
		return f.SetCellStyle(exportSheet, cell, cell, styles.byFmt[PatternInteger])

	case col.date != nil:
		v := *col.date(rec)
		if v == nil {
			return nil
		}
		if err := f.SetCellValue(exportSheet, cell, v.In(time.UTC)); err != nil {
			return err
		}
		return f.SetCellStyle(exportSheet, cell, cell, styles.date)

	case col.choice != nil:
		if err := f.SetCellValue(exportSheet, cell, col.choice.get(rec).Label); err != nil {
			return err
		}
		if col.Renderer == RendererStatus {
			if style, ok := styles.status[rec.Status]; ok {
				return f.SetCellStyle(exportSheet, cell, cell, style)
			}
		}
		return nil

	default:
		return f.SetCellValue(exportSheet, cell, *col.text(rec))
	}
}

func newExportStyles(f *excelize.File) (*exportStyles, error) {
	styles := &exportStyles{
		byFmt:  make(map[string]int),
		status: make(map[domain.Status]int),
	}

	var err error
	styles.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#F2F2F2"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	dateFmt := "dd.mm.yyyy"
	styles.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return nil, fmt.Errorf("failed to create date style: %w", err)
	}

	for _, pattern := range []string{PatternInteger, PatternMoney, PatternVolume} {
		numFmt := excelNumFmt(pattern)
		id, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
		if err != nil {
			return nil, fmt.Errorf("failed to create number style %s: %w", pattern, err)
		}
		styles.byFmt[pattern] = id
	}

	for status, color := range statusFills {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create status style: %w", err)
		}
		styles.status[status] = id
	}

	return styles, nil
}

// excelNumFmt переводит шаблон "0,0.00" в формат Excel "#,##0.00"
func excelNumFmt(pattern string) string {
	switch pattern {
	case PatternMoney:
		return "#,##0.00"
	case PatternVolume:
		return "#,##0.000"
	default:
		return "#,##0"
	}
}
