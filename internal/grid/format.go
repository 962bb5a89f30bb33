package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateFormat - формат отображения дат в таблице (DD.MM.YYYY)
	DateFormat = "02.01.2006"
	dateISO    = "2006-01-02"

	moneyPlaces = 2
)

// Шаблоны числовых колонок
const (
	PatternInteger = "0,0"
	PatternMoney   = "0,0.00"
	PatternVolume  = "0,0.000"
)

// FormatMoney форматирует денежное значение с двумя знаками.
// Незаполненное значение дает пустую строку.
func FormatMoney(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	return v.Decimal.StringFixed(moneyPlaces)
}

// FormatPattern форматирует число по шаблону вида "0,0.00":
// запятая включает разделитель тысяч, число нулей после точки задает точность.
func FormatPattern(v decimal.Decimal, pattern string) string {
	places := 0
	if dot := strings.IndexByte(pattern, '.'); dot >= 0 {
		places = len(pattern) - dot - 1
	}
	grouping := strings.Contains(pattern, ",")

	s := v.StringFixed(int32(places))
	if !grouping {
		return s
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}
	return sign + groupThousands(intPart) + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatDate форматирует дату как DD.MM.YYYY
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateFormat)
}

// ParseDate принимает DD.MM.YYYY, YYYY-MM-DD или RFC3339
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateFormat, dateISO, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidCellValue, s)
}

// parseNumber приводит значение ячейки к decimal.
// ok=false означает пустое или нечисловое значение.
func parseNumber(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero, false
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case decimal.Decimal:
		return v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		d, err := decimal.NewFromString(fmt.Sprint(v))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
}

// cellText приводит значение ячейки к строке
func cellText(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
