package domain

// Status представляет статус груза
type Status string

const (
	StatusNone             Status = ""
	StatusRegistering      Status = "Registering"
	StatusAwaitingDispatch Status = "AwaitingDispatch"
	StatusInTransit        Status = "InTransit"
	StatusDelivered        Status = "Delivered"
	StatusCancelled        Status = "Cancelled"
)

// Statuses перечисляет статусы в порядке выпадающего списка
var Statuses = []Status{
	StatusRegistering,
	StatusAwaitingDispatch,
	StatusInTransit,
	StatusDelivered,
	StatusCancelled,
}

var statusLabels = map[Status]string{
	StatusRegistering:      "Оформляется",
	StatusAwaitingDispatch: "Ожидает отправки",
	StatusInTransit:        "В пути",
	StatusDelivered:        "Доставлен",
	StatusCancelled:        "Отменен",
}

// Known сообщает, входит ли статус в закрытый набор
func (s Status) Known() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label возвращает подпись статуса; неизвестное значение возвращается как есть
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseStatus принимает код или подпись статуса
func ParseStatus(v string) (Status, bool) {
	for _, s := range Statuses {
		if v == string(s) || v == statusLabels[s] {
			return s, true
		}
	}
	return StatusNone, false
}

// PaymentMethod представляет способ оплаты
type PaymentMethod string

const (
	PaymentMethodNone              PaymentMethod = ""
	PaymentMethodCash              PaymentMethod = "Cash"
	PaymentMethodBankTransfer      PaymentMethod = "BankTransfer"
	PaymentMethodCard              PaymentMethod = "Card"
	PaymentMethodElectronicPayment PaymentMethod = "ElectronicPayment"
	PaymentMethodCrypto            PaymentMethod = "Crypto"
)

// PaymentMethods перечисляет способы оплаты в порядке выпадающего списка
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodBankTransfer,
	PaymentMethodCard,
	PaymentMethodElectronicPayment,
	PaymentMethodCrypto,
}

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCash:              "Наличные",
	PaymentMethodBankTransfer:      "Безналичный расчет",
	PaymentMethodCard:              "Карта",
	PaymentMethodElectronicPayment: "Электронный платеж",
	PaymentMethodCrypto:            "Криптовалюта",
}

func (m PaymentMethod) Known() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

func (m PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return string(m)
}

// ParsePaymentMethod принимает код или подпись способа оплаты
func ParsePaymentMethod(v string) (PaymentMethod, bool) {
	for _, m := range PaymentMethods {
		if v == string(m) || v == paymentMethodLabels[m] {
			return m, true
		}
	}
	return PaymentMethodNone, false
}

// Driver представляет водителя из фиксированного списка
type Driver string

const DriverNone Driver = ""

// Drivers - фиксированный список водителей
var Drivers = []Driver{
	"Иванов И.И.",
	"Петров П.П.",
	"Сидоров С.С.",
	"Николаев Н.Н.",
	"Морозов М.М.",
}

func (d Driver) Known() bool {
	for _, known := range Drivers {
		if d == known {
			return true
		}
	}
	return false
}

func (d Driver) Label() string {
	return string(d)
}

// ParseDriver проверяет, что водитель есть в списке
func ParseDriver(v string) (Driver, bool) {
	d := Driver(v)
	if d.Known() {
		return d, true
	}
	return DriverNone, false
}
