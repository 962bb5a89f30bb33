package grid

import (
	"github.com/avc/cargo-office/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	badgeClass = "status-badge"
	alignRight = "htRight"
)

// statusBadges - стиль бейджа для каждого статуса
var statusBadges = map[domain.Status]string{
	domain.StatusInTransit:        "status-in-transit",
	domain.StatusDelivered:        "status-delivered",
	domain.StatusAwaitingDispatch: "status-pending",
	domain.StatusCancelled:        "status-cancelled",
	domain.StatusRegistering:      "status-processing",
}

// Badge описывает отрисовку статуса
type Badge struct {
	Label string `json:"label"`
	Class string `json:"class"`
	Style string `json:"style,omitempty"`
}

// StatusBadge возвращает бейдж статуса. Неизвестный статус отображается
// своим текстом без стиля.
func StatusBadge(s domain.Status) Badge {
	style, ok := statusBadges[s]
	if !ok {
		return Badge{Label: string(s), Class: badgeClass}
	}
	return Badge{Label: s.Label(), Class: badgeClass + " " + style, Style: style}
}

// Cell - отрисованная ячейка
type Cell struct {
	Field     Field  `json:"field"`
	Value     any    `json:"value"`
	Display   string `json:"display"`
	ClassName string `json:"className,omitempty"`
	Badge     *Badge `json:"badge,omitempty"`
	ReadOnly  bool   `json:"readOnly,omitempty"`
}

// Row - отрисованная строка таблицы
type Row struct {
	ID    string `json:"id"`
	Cells []Cell `json:"cells"`
}

// RenderRow отрисовывает запись по таблице колонок
func RenderRow(rec *domain.CargoRecord) Row {
	cells := make([]Cell, 0, len(columns))
	for i := range columns {
		cells = append(cells, renderCell(&columns[i], rec))
	}
	return Row{ID: rec.ID, Cells: cells}
}

// RenderRows отрисовывает последовательность записей в исходном порядке
func RenderRows(records []*domain.CargoRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, RenderRow(rec))
	}
	return rows
}

func renderCell(c *Column, rec *domain.CargoRecord) Cell {
	cell := Cell{Field: c.Field, Value: c.Value(rec), ReadOnly: c.ReadOnly}

	switch c.Renderer {
	case RendererStatus:
		badge := StatusBadge(rec.Status)
		cell.Display = badge.Label
		cell.Badge = &badge
	case RendererMoney:
		cell.Display = FormatMoney(*c.number(rec))
		cell.ClassName = alignRight
	case RendererNumeric:
		cell.Display = renderNumeric(c, rec)
	case RendererDate:
		cell.Display = FormatDate(*c.date(rec))
	default:
		cell.Display = renderText(c, rec)
	}

	return cell
}

func renderNumeric(c *Column, rec *domain.CargoRecord) string {
	if c.count != nil {
		v := *c.count(rec)
		if v == nil {
			return ""
		}
		return FormatPattern(decimal.NewFromInt(*v), c.Pattern)
	}
	v := *c.number(rec)
	if !v.Valid {
		return ""
	}
	return FormatPattern(v.Decimal, c.Pattern)
}

func renderText(c *Column, rec *domain.CargoRecord) string {
	if c.choice != nil {
		return c.choice.get(rec).Label
	}
	if c.text != nil {
		return *c.text(rec)
	}
	return cellText(c.Value(rec))
}
