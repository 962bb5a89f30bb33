package grid

// Field - ключ колонки, совпадает с JSON именем поля CargoRecord
type Field string

const (
	FieldBatchNumber            Field = "batchNumber"
	FieldStatus                 Field = "status"
	FieldClientCode             Field = "clientCode"
	FieldDepartureFromChinaDate Field = "departureFromChinaDate"
	FieldPlacesCount            Field = "placesCount"
	FieldWeight                 Field = "weight"
	FieldBoxesCount             Field = "boxesCount"
	FieldCubicTariff            Field = "cubicTariff"
	FieldUnitsCount             Field = "unitsCount"
	FieldProductName            Field = "productName"
	FieldProductPrice           Field = "productPrice"
	FieldInsurancePercent       Field = "insurancePercent"
	FieldVolume                 Field = "volume"
	FieldFreightTariff          Field = "freightTariff"
	FieldInsurance              Field = "insurance"
	FieldPackaging              Field = "packaging"
	FieldTotal                  Field = "total"
	FieldNotes                  Field = "notes"
	FieldPaymentMethod          Field = "paymentMethod"
	FieldPaidUSD                Field = "paidUSD"
	FieldPaidRUB                Field = "paidRUB"
	FieldPaymentDate            Field = "paymentDate"
	FieldDriver                 Field = "driver"
	FieldPlacesSent             Field = "placesSent"
	FieldShipmentDate           Field = "shipmentDate"
	FieldRecipient              Field = "recipient"
	FieldPhone                  Field = "phone"
	FieldCity                   Field = "city"
	FieldCountry                Field = "country"
	FieldTransportCompany       Field = "transportCompany"
)
