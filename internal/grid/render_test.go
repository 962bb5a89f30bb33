package grid

import (
	"testing"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellOf(t *testing.T, row Row, f Field) Cell {
	t.Helper()
	for _, c := range row.Cells {
		if c.Field == f {
			return c
		}
	}
	t.Fatalf("cell %s not found", f)
	return Cell{}
}

func TestStatusBadge(t *testing.T) {
	t.Run("Known status", func(t *testing.T) {
		b := StatusBadge(domain.StatusDelivered)
		assert.Equal(t, "Доставлен", b.Label)
		assert.Equal(t, "status-badge status-delivered", b.Class)
		assert.Equal(t, "status-delivered", b.Style)
	})

	t.Run("Unknown status renders as plain text", func(t *testing.T) {
		b := StatusBadge(domain.Status("Потерян"))
		assert.Equal(t, "Потерян", b.Label)
		assert.Equal(t, "status-badge", b.Class)
		assert.Empty(t, b.Style)
	})
}

func TestRenderRow(t *testing.T) {
	departure := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	places := int64(1200)
	rec := &domain.CargoRecord{
		ID:                     "row-1",
		BatchNumber:            "B-1",
		Status:                 domain.Status("неизвестный"),
		DepartureFromChinaDate: &departure,
		PlacesCount:            &places,
		Volume:                 dec("1.5"),
		CubicTariff:            dec("200"),
		PaymentMethod:          domain.PaymentMethodCard,
		Driver:                 "Петров П.П.",
	}

	row := RenderRow(rec)

	require.Len(t, row.Cells, len(Columns()))
	assert.Equal(t, "row-1", row.ID)

	status := cellOf(t, row, FieldStatus)
	require.NotNil(t, status.Badge)
	assert.Equal(t, "неизвестный", status.Display)
	assert.Empty(t, status.Badge.Style)

	assert.Equal(t, "05.01.2025", cellOf(t, row, FieldDepartureFromChinaDate).Display)
	assert.Equal(t, "2025-01-05", cellOf(t, row, FieldDepartureFromChinaDate).Value)
	assert.Equal(t, "1,200", cellOf(t, row, FieldPlacesCount).Display)
	assert.Equal(t, "1.500", cellOf(t, row, FieldVolume).Display)

	tariff := cellOf(t, row, FieldCubicTariff)
	assert.Equal(t, "200.00", tariff.Display)
	assert.Equal(t, "htRight", tariff.ClassName)

	total := cellOf(t, row, FieldTotal)
	assert.Equal(t, "", total.Display)
	assert.True(t, total.ReadOnly)

	assert.Equal(t, "Карта", cellOf(t, row, FieldPaymentMethod).Display)
	assert.Equal(t, "Card", cellOf(t, row, FieldPaymentMethod).Value)
	assert.Equal(t, "Петров П.П.", cellOf(t, row, FieldDriver).Display)
}

func TestRenderRow_NeverShowsNaN(t *testing.T) {
	row := RenderRow(&domain.CargoRecord{ID: "blank"})
	for _, c := range row.Cells {
		assert.NotContains(t, c.Display, "NaN", c.Field)
	}
}

func TestColumns(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, 30)
	assert.Equal(t, FieldBatchNumber, cols[0].Field)
	assert.Equal(t, FieldTransportCompany, cols[len(cols)-1].Field)

	cols[0].Title = "changed"
	assert.Equal(t, "Партия", Columns()[0].Title)

	total, ok := ColumnByField(FieldTotal)
	require.True(t, ok)
	assert.True(t, total.ReadOnly)

	status, ok := ColumnByField(FieldStatus)
	require.True(t, ok)
	assert.Equal(t, EditorDropdown, status.Type)
	assert.Equal(t, []string{"Оформляется", "Ожидает отправки", "В пути", "Доставлен", "Отменен"}, status.Source)

	_, ok = ColumnByField("missing")
	assert.False(t, ok)
}

func TestColumn_Set(t *testing.T) {
	col := func(f Field) Column {
		c, ok := ColumnByField(f)
		require.True(t, ok)
		return c
	}

	t.Run("Total is read-only", func(t *testing.T) {
		_, err := col(FieldTotal).Set(&domain.CargoRecord{}, "10")
		assert.ErrorIs(t, err, ErrReadOnlyField)
	})

	t.Run("Non-numeric input is coerced to unset", func(t *testing.T) {
		rec := &domain.CargoRecord{Volume: dec("3")}
		coerced, err := col(FieldVolume).Set(rec, "abc")
		require.NoError(t, err)
		assert.True(t, coerced)
		assert.False(t, rec.Volume.Valid)
	})

	t.Run("Empty input clears without coercion", func(t *testing.T) {
		rec := &domain.CargoRecord{Volume: dec("3")}
		coerced, err := col(FieldVolume).Set(rec, "")
		require.NoError(t, err)
		assert.False(t, coerced)
		assert.False(t, rec.Volume.Valid)
	})

	t.Run("Insurance percent range", func(t *testing.T) {
		rec := &domain.CargoRecord{}
		_, err := col(FieldInsurancePercent).Set(rec, 120.0)
		assert.ErrorIs(t, err, ErrValueOutOfRange)
		assert.False(t, rec.InsurancePercent.Valid)

		_, err = col(FieldInsurancePercent).Set(rec, 12.5)
		require.NoError(t, err)
		assert.Equal(t, "12.50", FormatMoney(rec.InsurancePercent))
	})

	t.Run("Negative count is rejected", func(t *testing.T) {
		_, err := col(FieldPlacesCount).Set(&domain.CargoRecord{}, -1.0)
		assert.ErrorIs(t, err, ErrValueOutOfRange)
	})

	t.Run("Count beyond int64 is rejected", func(t *testing.T) {
		places := int64(3)
		rec := &domain.CargoRecord{PlacesCount: &places}
		_, err := col(FieldPlacesCount).Set(rec, "99999999999999999999")
		assert.ErrorIs(t, err, ErrValueOutOfRange)
		require.NotNil(t, rec.PlacesCount)
		assert.Equal(t, int64(3), *rec.PlacesCount)
	})

	t.Run("Fractional count is rejected", func(t *testing.T) {
		_, err := col(FieldBoxesCount).Set(&domain.CargoRecord{}, "2.5")
		assert.ErrorIs(t, err, ErrInvalidCellValue)
	})

	t.Run("Date accepts display format", func(t *testing.T) {
		rec := &domain.CargoRecord{}
		_, err := col(FieldShipmentDate).Set(rec, "01.02.2025")
		require.NoError(t, err)
		require.NotNil(t, rec.ShipmentDate)
		assert.Equal(t, "01.02.2025", FormatDate(rec.ShipmentDate))
	})

	t.Run("Bad date is rejected", func(t *testing.T) {
		_, err := col(FieldShipmentDate).Set(&domain.CargoRecord{}, "32.01.2025")
		assert.ErrorIs(t, err, ErrInvalidCellValue)
	})

	t.Run("Status by label and by code", func(t *testing.T) {
		rec := &domain.CargoRecord{}
		_, err := col(FieldStatus).Set(rec, "В пути")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInTransit, rec.Status)

		_, err = col(FieldStatus).Set(rec, "Delivered")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDelivered, rec.Status)
	})

	t.Run("Choice outside the list is rejected", func(t *testing.T) {
		rec := &domain.CargoRecord{Driver: "Иванов И.И."}
		_, err := col(FieldDriver).Set(rec, "Кто-то")
		assert.ErrorIs(t, err, ErrNotInChoiceList)
		assert.Equal(t, domain.Driver("Иванов И.И."), rec.Driver)
	})

	t.Run("Empty choice clears the value", func(t *testing.T) {
		rec := &domain.CargoRecord{PaymentMethod: domain.PaymentMethodCash}
		_, err := col(FieldPaymentMethod).Set(rec, "")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentMethodNone, rec.PaymentMethod)
	})
}
