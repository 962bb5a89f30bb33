package grid

import "errors"

// Ошибки редактирования таблицы
var (
	ErrRowNotFound      = errors.New("row not found")
	ErrUnknownField     = errors.New("unknown field")
	ErrReadOnlyField    = errors.New("field is read-only")
	ErrInvalidCellValue = errors.New("invalid cell value")
	ErrNotInChoiceList  = errors.New("value is not in choice list")
	ErrValueOutOfRange  = errors.New("value out of range")
)
