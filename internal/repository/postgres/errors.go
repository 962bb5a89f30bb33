package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок PostgreSQL
const (
	codeInvalidTextRepresentation = "22P02"
)

// isInvalidText сообщает, что значение не удалось привести к типу колонки
// (например, id сессии не является UUID)
func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeInvalidTextRepresentation
}
