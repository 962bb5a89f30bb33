package grid

import (
	"strings"

	"github.com/avc/cargo-office/internal/domain"
)

// searchableText возвращает текстовые поля, по которым работает поиск.
// Для статуса проверяются и код, и подпись.
func searchableText(rec *domain.CargoRecord) []string {
	return []string{
		rec.BatchNumber,
		string(rec.Status),
		rec.Status.Label(),
		rec.ClientCode,
		rec.ProductName,
		rec.Notes,
		string(rec.Driver),
		rec.Recipient,
		rec.City,
		rec.Country,
		rec.TransportCompany,
	}
}

// Filter возвращает записи, у которых хотя бы одно текстовое поле содержит
// query без учета регистра. Пустой запрос возвращает records как есть.
func Filter(records []*domain.CargoRecord, query string) []*domain.CargoRecord {
	if query == "" {
		return records
	}

	q := strings.ToLower(query)
	filtered := make([]*domain.CargoRecord, 0, len(records))
	for _, rec := range records {
		if Matches(rec, q) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// Matches проверяет одну запись; lowerQuery должен быть в нижнем регистре
func Matches(rec *domain.CargoRecord, lowerQuery string) bool {
	for _, text := range searchableText(rec) {
		if text == "" {
			continue
		}
		if strings.Contains(strings.ToLower(text), lowerQuery) {
			return true
		}
	}
	return false
}
