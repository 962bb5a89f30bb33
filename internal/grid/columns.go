package grid

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/shopspring/decimal"
)

// EditorType - способ редактирования ячейки
type EditorType string

const (
	EditorText     EditorType = "text"
	EditorNumeric  EditorType = "numeric"
	EditorDate     EditorType = "date"
	EditorDropdown EditorType = "dropdown"
)

// RendererType - способ отображения ячейки
type RendererType string

const (
	RendererText    RendererType = "text"
	RendererStatus  RendererType = "status"
	RendererMoney   RendererType = "money"
	RendererNumeric RendererType = "numeric"
	RendererDate    RendererType = "date"
)

// Column - статическое описание колонки таблицы
type Column struct {
	Field      Field        `json:"data"`
	Title      string       `json:"title"`
	Width      int          `json:"width"`
	Type       EditorType   `json:"type"`
	Pattern    string       `json:"numericFormat,omitempty"`
	DateFormat string       `json:"dateFormat,omitempty"`
	Source     []string     `json:"source,omitempty"`
	ReadOnly   bool         `json:"readOnly,omitempty"`
	Renderer   RendererType `json:"renderer"`

	text   func(*domain.CargoRecord) *string
	number func(*domain.CargoRecord) *decimal.NullDecimal
	count  func(*domain.CargoRecord) **int64
	date   func(*domain.CargoRecord) **time.Time
	choice *choiceList

	min *decimal.Decimal
	max *decimal.Decimal
}

// choiceValue - значение колонки с выпадающим списком
type choiceValue struct {
	Code  string
	Label string
	Known bool
}

type choiceList struct {
	get func(*domain.CargoRecord) choiceValue
	// set разбирает код или подпись; false, если значения нет в списке
	set func(rec *domain.CargoRecord, v string) bool
}

var (
	zero       = decimal.Zero
	oneHundred = decimal.NewFromInt(100)
	maxCount   = decimal.NewFromInt(math.MaxInt64)
)

func textColumn(f Field, title string, width int, acc func(*domain.CargoRecord) *string) Column {
	return Column{Field: f, Title: title, Width: width, Type: EditorText, Renderer: RendererText, text: acc}
}

func numberColumn(f Field, title string, width int, pattern string, renderer RendererType, acc func(*domain.CargoRecord) *decimal.NullDecimal) Column {
	return Column{Field: f, Title: title, Width: width, Type: EditorNumeric, Pattern: pattern, Renderer: renderer, number: acc}
}

func countColumn(f Field, title string, width int, acc func(*domain.CargoRecord) **int64) Column {
	return Column{Field: f, Title: title, Width: width, Type: EditorNumeric, Pattern: PatternInteger, Renderer: RendererNumeric, count: acc, min: &zero, max: &maxCount}
}

func dateColumn(f Field, title string, width int, acc func(*domain.CargoRecord) **time.Time) Column {
	return Column{Field: f, Title: title, Width: width, Type: EditorDate, DateFormat: "DD.MM.YYYY", Renderer: RendererDate, date: acc}
}

func choiceColumn(f Field, title string, width int, renderer RendererType, source []string, list *choiceList) Column {
	return Column{Field: f, Title: title, Width: width, Type: EditorDropdown, Source: source, Renderer: renderer, choice: list}
}

func (c Column) withRange(min, max *decimal.Decimal) Column {
	c.min, c.max = min, max
	return c
}

func (c Column) readOnly() Column {
	c.ReadOnly = true
	return c
}

var statusChoices = &choiceList{
	get: func(r *domain.CargoRecord) choiceValue {
		return choiceValue{Code: string(r.Status), Label: r.Status.Label(), Known: r.Status.Known()}
	},
	set: func(r *domain.CargoRecord, v string) bool {
		s, ok := domain.ParseStatus(v)
		if ok {
			r.Status = s
		}
		return ok
	},
}

var paymentMethodChoices = &choiceList{
	get: func(r *domain.CargoRecord) choiceValue {
		return choiceValue{Code: string(r.PaymentMethod), Label: r.PaymentMethod.Label(), Known: r.PaymentMethod.Known()}
	},
	set: func(r *domain.CargoRecord, v string) bool {
		m, ok := domain.ParsePaymentMethod(v)
		if ok {
			r.PaymentMethod = m
		}
		return ok
	},
}

var driverChoices = &choiceList{
	get: func(r *domain.CargoRecord) choiceValue {
		return choiceValue{Code: string(r.Driver), Label: r.Driver.Label(), Known: r.Driver.Known()}
	},
	set: func(r *domain.CargoRecord, v string) bool {
		d, ok := domain.ParseDriver(v)
		if ok {
			r.Driver = d
		}
		return ok
	},
}

func statusLabels() []string {
	labels := make([]string, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		labels = append(labels, s.Label())
	}
	return labels
}

func paymentMethodLabels() []string {
	labels := make([]string, 0, len(domain.PaymentMethods))
	for _, m := range domain.PaymentMethods {
		labels = append(labels, m.Label())
	}
	return labels
}

func driverLabels() []string {
	labels := make([]string, 0, len(domain.Drivers))
	for _, d := range domain.Drivers {
		labels = append(labels, d.Label())
	}
	return labels
}

// columns - порядок, подписи и ширины колонок грузовой таблицы
var columns = []Column{
	textColumn(FieldBatchNumber, "Партия", 100, func(r *domain.CargoRecord) *string { return &r.BatchNumber }),
	choiceColumn(FieldStatus, "Статус", 90, RendererStatus, statusLabels(), statusChoices),
	textColumn(FieldClientCode, "Клиент", 110, func(r *domain.CargoRecord) *string { return &r.ClientCode }),
	dateColumn(FieldDepartureFromChinaDate, "Из Китая", 100, func(r *domain.CargoRecord) **time.Time { return &r.DepartureFromChinaDate }),
	countColumn(FieldPlacesCount, "Мест", 100, func(r *domain.CargoRecord) **int64 { return &r.PlacesCount }),
	numberColumn(FieldWeight, "Вес, кг", 100, PatternMoney, RendererNumeric, func(r *domain.CargoRecord) *decimal.NullDecimal { return &r.Weight }).
		withRange(&zero, nil),
	countColumn(FieldBoxesCount, "Коробки", 100, func(r *domain.CargoRecord) **int64 { return &r.BoxesCount }),
	numberColumn(FieldCubicTariff, "Тариф куб, $", 120, PatternMoney, RendererMoney, func(r *domain.CargoRecord) *decimal.NullDecimal { return &r.CubicTariff }),
	countColumn(FieldUnitsCount, "Кол-во ед., шт", 140, func(r *domain.CargoRecord) **int64 { return &r.UnitsCount }),
	textColumn(FieldProductName, "Наименование", 200, func(r *domain.CargoRecord) *string { return &r.ProductName }),
	numberColumn(FieldProductPrice, "Цена товара, ¥", 140, PatternMoney, RendererMoney, func(r *domain.CargoRecord) *decimal.NullDecimal { return &r.ProductPrice }),
	numberColumn(FieldInsurancePercent, "Страховка, %", 130, PatternMoney, RendererNumeric, func(r *domain.CargoRecord) *decimal.NullDecimal { return &r.InsurancePercent }).
		withRange(&zero, &oneHundred),
	numberColumn(FieldVolume, "Объём, м3", 120, PatternVolume, RendererNumeric, func(r *domain.CargoRecord) *decimal.NullDecimal { return &r.Volume }),
	numberColumn(FieldFreightTariff, "Тариф фрахт, $", 140, PatternMoney, RendererMoney, func(r *domain.CargoRecord) *decimal.NullDecimal { return &r.FreightTariff }),
	numberColumn(FieldInsurance, "Страховка, $", 130, PatternMoney, RendererMoney, func(r *domain.CargoRecord) *decimal.NullDecimal { return &r.Insurance }),
	numberColumn(FieldPackaging, "Упаковка, $", 120, PatternMoney, RendererMoney, func(r *domain.CargoRecord) *decimal.NullDecimal { return &r.Packaging }),
	numberColumn(FieldTotal, "Итого, $", 100, PatternMoney, RendererMoney, func(r *domain.CargoRecord) *decimal.NullDecimal { return &r.Total }).
		readOnly(),
	textColumn(FieldNotes, "Примечание", 150, func(r *domain.CargoRecord) *string { return &r.Notes }),
	choiceColumn(FieldPaymentMethod, "Метод оплаты", 150, RendererText, paymentMethodLabels(), paymentMethodChoices),
	numberColumn(FieldPaidUSD, "Оплачено, $", 120, PatternMoney, RendererMoney, func(r *domain.CargoRecord) *decimal.NullDecimal { return &r.PaidUSD }),
	numberColumn(FieldPaidRUB, "Оплачено, ₽", 120, PatternMoney, RendererMoney, func(r *domain.CargoRecord) *decimal.NullDecimal { return &r.PaidRUB }),
	dateColumn(FieldPaymentDate, "Дата оплаты", 130, func(r *domain.CargoRecord) **time.Time { return &r.PaymentDate }),
	choiceColumn(FieldDriver, "Водитель", 150, RendererText, driverLabels(), driverChoices),
	countColumn(FieldPlacesSent, "Мест от.", 110, func(r *domain.CargoRecord) **int64 { return &r.PlacesSent }),
	dateColumn(FieldShipmentDate, "Дата отправки", 140, func(r *domain.CargoRecord) **time.Time { return &r.ShipmentDate }),
	textColumn(FieldRecipient, "Получатель", 250, func(r *domain.CargoRecord) *string { return &r.Recipient }),
	textColumn(FieldPhone, "Телефон", 120, func(r *domain.CargoRecord) *string { return &r.Phone }),
	textColumn(FieldCity, "Город", 120, func(r *domain.CargoRecord) *string { return &r.City }),
	textColumn(FieldCountry, "Страна", 120, func(r *domain.CargoRecord) *string { return &r.Country }),
	textColumn(FieldTransportCompany, "ТК", 140, func(r *domain.CargoRecord) *string { return &r.TransportCompany }),
}

var columnsByField = func() map[Field]*Column {
	index := make(map[Field]*Column, len(columns))
	for i := range columns {
		index[columns[i].Field] = &columns[i]
	}
	return index
}()

// Columns возвращает копию описаний колонок
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// ColumnByField ищет колонку по ключу поля
func ColumnByField(f Field) (Column, bool) {
	c, ok := columnsByField[f]
	if !ok {
		return Column{}, false
	}
	return *c, true
}

// Set записывает значение ячейки в запись. coerced=true означает, что
// нечисловой ввод в числовую ячейку был сброшен в пустое значение.
// Вычисляемые поля не пересчитываются здесь, см. AfterEdit.
func (c Column) Set(rec *domain.CargoRecord, raw any) (coerced bool, err error) {
	if c.ReadOnly || isDerived(c.Field) {
		return false, ErrReadOnlyField
	}

	switch {
	case c.text != nil:
		*c.text(rec) = cellText(raw)
		return false, nil

	case c.number != nil:
		d, ok := parseNumber(raw)
		if !ok {
			*c.number(rec) = decimal.NullDecimal{}
			return strings.TrimSpace(cellText(raw)) != "", nil
		}
		if err := c.checkRange(d); err != nil {
			return false, err
		}
		*c.number(rec) = decimal.NewNullDecimal(d)
		return false, nil

	case c.count != nil:
		d, ok := parseNumber(raw)
		if !ok {
			*c.count(rec) = nil
			return strings.TrimSpace(cellText(raw)) != "", nil
		}
		if !d.IsInteger() {
			return false, fmt.Errorf("%w: %s must be an integer", ErrInvalidCellValue, c.Field)
		}
		if err := c.checkRange(d); err != nil {
			return false, err
		}
		v := d.IntPart()
		*c.count(rec) = &v
		return false, nil

	case c.date != nil:
		s := strings.TrimSpace(cellText(raw))
		if s == "" {
			*c.date(rec) = nil
			return false, nil
		}
		t, err := ParseDate(s)
		if err != nil {
			return false, err
		}
		*c.date(rec) = &t
		return false, nil

	case c.choice != nil:
		s := strings.TrimSpace(cellText(raw))
		if s == "" {
			clearChoice(rec, c.Field)
			return false, nil
		}
		if !c.choice.set(rec, s) {
			return false, fmt.Errorf("%w: %s %q", ErrNotInChoiceList, c.Field, s)
		}
		return false, nil
	}

	return false, fmt.Errorf("%w: %s", ErrUnknownField, c.Field)
}

func (c Column) checkRange(d decimal.Decimal) error {
	if c.min != nil && d.LessThan(*c.min) {
		return fmt.Errorf("%w: %s must be >= %s", ErrValueOutOfRange, c.Field, c.min)
	}
	if c.max != nil && d.GreaterThan(*c.max) {
		return fmt.Errorf("%w: %s must be <= %s", ErrValueOutOfRange, c.Field, c.max)
	}
	return nil
}

func clearChoice(rec *domain.CargoRecord, f Field) {
	switch f {
	case FieldStatus:
		rec.Status = domain.StatusNone
	case FieldPaymentMethod:
		rec.PaymentMethod = domain.PaymentMethodNone
	case FieldDriver:
		rec.Driver = domain.DriverNone
	}
}

// Value возвращает типизированное значение ячейки для JSON
func (c Column) Value(rec *domain.CargoRecord) any {
	switch {
	case c.text != nil:
		return *c.text(rec)
	case c.number != nil:
		return *c.number(rec)
	case c.count != nil:
		return *c.count(rec)
	case c.date != nil:
		if t := *c.date(rec); t != nil {
			return t.Format(dateISO)
		}
		return nil
	case c.choice != nil:
		return c.choice.get(rec).Code
	}
	return nil
}
