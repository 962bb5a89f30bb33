package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionState представляет состояние сессии пользователя
type SessionState string

const (
	SessionStateLoggedOut      SessionState = "LOGGED_OUT"
	SessionStateAuthenticating SessionState = "AUTHENTICATING"
	SessionStateLoggedIn       SessionState = "LOGGED_IN"
)

// Session представляет сессию сотрудника офиса
type Session struct {
	ID          string       `json:"id"`
	Login       string       `json:"login"`
	AccessToken string       `json:"-"` // Токен бэкенда не уходит в браузер
	State       SessionState `json:"state"`
	CreatedAt   time.Time    `json:"created_at"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// Expired сообщает, истекла ли сессия к моменту now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Period представляет учетный период, которым владеет бэкенд
type Period struct {
	ID   int64  `json:"period_id"`
	Name string `json:"period_name"`
}

// CargoRecord представляет одну строку грузовой таблицы.
// Числовые поля могут быть не заполнены; Total всегда вычисляется.
type CargoRecord struct {
	ID          string `json:"id"`
	BatchNumber string `json:"batchNumber"`
	Status      Status `json:"status"`
	ClientCode  string `json:"clientCode"`

	DepartureFromChinaDate *time.Time `json:"departureFromChinaDate"`
	PaymentDate            *time.Time `json:"paymentDate"`
	ShipmentDate           *time.Time `json:"shipmentDate"`

	PlacesCount *int64 `json:"placesCount"`
	BoxesCount  *int64 `json:"boxesCount"`
	UnitsCount  *int64 `json:"unitsCount"`
	PlacesSent  *int64 `json:"placesSent"`

	Weight           decimal.NullDecimal `json:"weight"`
	CubicTariff      decimal.NullDecimal `json:"cubicTariff"`
	ProductName      string              `json:"productName"`
	ProductPrice     decimal.NullDecimal `json:"productPrice"`
	InsurancePercent decimal.NullDecimal `json:"insurancePercent"`
	Volume           decimal.NullDecimal `json:"volume"`
	FreightTariff    decimal.NullDecimal `json:"freightTariff"`
	Insurance        decimal.NullDecimal `json:"insurance"`
	Packaging        decimal.NullDecimal `json:"packaging"`
	Total            decimal.NullDecimal `json:"total"`

	Notes         string              `json:"notes"`
	PaymentMethod PaymentMethod       `json:"paymentMethod"`
	PaidUSD       decimal.NullDecimal `json:"paidUSD"`
	PaidRUB       decimal.NullDecimal `json:"paidRUB"`

	Driver           Driver `json:"driver"`
	Recipient        string `json:"recipient"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	Country          string `json:"country"`
	TransportCompany string `json:"transportCompany"`
}

// ImportJob представляет выбранный пользователем Excel файл
type ImportJob struct {
	SessionID   string
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
	UploadedAt  time.Time
}
