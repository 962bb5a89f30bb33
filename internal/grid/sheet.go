package grid

import (
	"errors"
	"fmt"
	"sync"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/google/uuid"
)

// Sheet хранит рабочий набор записей одной сессии.
// Набор никогда не бывает пустым: при отсутствии записей в нем одна пустая строка.
type Sheet struct {
	mu   sync.RWMutex
	rows []*domain.CargoRecord
}

// CellChange - правка одной ячейки
type CellChange struct {
	Field Field `json:"field"`
	Value any   `json:"value"`
}

// RejectedChange - отклоненная правка
type RejectedChange struct {
	Field  Field  `json:"field"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

// EditResult - результат применения правок к строке
type EditResult struct {
	Row        Row              `json:"row"`
	Recomputed bool             `json:"recomputed"`
	Coerced    []Field          `json:"coerced,omitempty"`
	Rejected   []RejectedChange `json:"rejected,omitempty"`
}

// NewSheet создает набор из записей; Total каждой записи пересчитывается
func NewSheet(records []domain.CargoRecord) *Sheet {
	s := &Sheet{rows: make([]*domain.CargoRecord, 0, len(records))}
	for i := range records {
		rec := records[i]
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		Recompute(&rec)
		s.rows = append(s.rows, &rec)
	}
	s.ensureNotEmpty()
	return s
}

// blankRecord создает пустую строку с вычисленным Total
func blankRecord() *domain.CargoRecord {
	rec := &domain.CargoRecord{ID: uuid.NewString()}
	Recompute(rec)
	return rec
}

func (s *Sheet) ensureNotEmpty() {
	if len(s.rows) == 0 {
		s.rows = append(s.rows, blankRecord())
	}
}

// Len возвращает количество строк
func (s *Sheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// InsertRow вставляет пустую строку на позицию at; вне диапазона - в конец
func (s *Sheet) InsertRow(at int) Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := blankRecord()
	if at < 0 || at >= len(s.rows) {
		s.rows = append(s.rows, rec)
	} else {
		s.rows = append(s.rows, nil)
		copy(s.rows[at+1:], s.rows[at:])
		s.rows[at] = rec
	}

	return RenderRow(rec)
}

// RemoveRow удаляет строку; после удаления последней строки добавляется пустая
func (s *Sheet) RemoveRow(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrRowNotFound
	}

	s.rows = append(s.rows[:idx], s.rows[idx+1:]...)
	s.ensureNotEmpty()
	return nil
}

// Edit применяет правки ячеек к одной строке. Правка, затрагивающая поле из
// таблицы зависимостей, пересчитывает вычисляемые поля этой строки до
// возврата из метода. Отклоненные правки не меняют строку.
func (s *Sheet) Edit(id string, changes []CellChange) (EditResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return EditResult{}, ErrRowNotFound
	}
	rec := s.rows[idx]

	var result EditResult
	for _, change := range changes {
		col, ok := ColumnByField(change.Field)
		if !ok {
			result.Rejected = append(result.Rejected, reject(change.Field, fmt.Errorf("%w: %s", ErrUnknownField, change.Field)))
			continue
		}

		coerced, err := col.Set(rec, change.Value)
		if err != nil {
			result.Rejected = append(result.Rejected, reject(change.Field, err))
			continue
		}
		if coerced {
			result.Coerced = append(result.Coerced, change.Field)
		}
		if TriggersRecompute(change.Field) {
			AfterEdit(rec, change.Field)
			result.Recomputed = true
		}
	}

	result.Row = RenderRow(rec)
	return result, nil
}

func reject(f Field, err error) RejectedChange {
	return RejectedChange{Field: f, Reason: err.Error(), Err: err}
}

// View возвращает отрисованные строки, прошедшие фильтр
func (s *Sheet) View(query string) []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return RenderRows(Filter(s.rows, query))
}

// Snapshot возвращает копии записей, прошедших фильтр
func (s *Sheet) Snapshot(query string) []domain.CargoRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visible := Filter(s.rows, query)
	out := make([]domain.CargoRecord, 0, len(visible))
	for _, rec := range visible {
		out = append(out, *rec)
	}
	return out
}

// Record возвращает копию строки по id
func (s *Sheet) Record(id string) (domain.CargoRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.CargoRecord{}, ErrRowNotFound
	}
	return *s.rows[idx], nil
}

func (s *Sheet) indexOf(id string) int {
	for i, rec := range s.rows {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// IsEditRejection сообщает, что ошибка относится к отклоненной правке ячейки
func IsEditRejection(err error) bool {
	return errors.Is(err, ErrUnknownField) ||
		errors.Is(err, ErrReadOnlyField) ||
		errors.Is(err, ErrInvalidCellValue) ||
		errors.Is(err, ErrNotInChoiceList) ||
		errors.Is(err, ErrValueOutOfRange)
}
