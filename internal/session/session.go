package session

import (
	"sync"
	"time"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/avc/cargo-office/internal/grid"
)

// Session - живая сессия сотрудника: состояние, токен бэкенда,
// рабочая таблица и кэш периодов. Реализует domain.TokenSource.
type Session struct {
	mu   sync.RWMutex
	info domain.Session

	sheet *grid.Sheet

	periods       []domain.Period
	periodsLoaded bool
}

func newSession(info domain.Session) *Session {
	return &Session{info: info, sheet: grid.NewSheet(nil)}
}

// ID возвращает идентификатор сессии
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info.ID
}

// Info возвращает копию данных сессии
func (s *Session) Info() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// State возвращает текущее состояние
func (s *Session) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info.State
}

// Sheet возвращает рабочую таблицу сессии
func (s *Session) Sheet() *grid.Sheet {
	return s.sheet
}

// AccessToken возвращает токен бэкенда, пока сессия в состоянии LoggedIn
func (s *Session) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.info.State != domain.SessionStateLoggedIn || s.info.AccessToken == "" {
		return "", false
	}
	return s.info.AccessToken, true
}

// Invalidate обрабатывает ответ 401: токен сбрасывается, сессия выходит из системы
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.applyLocked(EventUnauthorized); err == nil {
		s.clearLocked()
	}
}

// Alive сообщает, что сессией можно пользоваться в момент now
func (s *Session) Alive(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info.State == domain.SessionStateLoggedIn && !s.info.Expired(now)
}

func (s *Session) apply(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(ev)
}

func (s *Session) applyLocked(ev Event) error {
	next, err := Next(s.info.State, ev)
	if err != nil {
		return err
	}
	s.info.State = next
	return nil
}

func (s *Session) clearLocked() {
	s.info.AccessToken = ""
	s.periods = nil
	s.periodsLoaded = false
}

// Periods возвращает кэш периодов; loaded=false, если список еще не загружался
func (s *Session) Periods() (periods []domain.Period, loaded bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Period, len(s.periods))
	copy(out, s.periods)
	return out, s.periodsLoaded
}

// SetPeriods заменяет кэш периодов
func (s *Session) SetPeriods(periods []domain.Period) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.periods = make([]domain.Period, len(periods))
	copy(s.periods, periods)
	s.periodsLoaded = true
}

// AddPeriod добавляет созданный период в конец кэша
func (s *Session) AddPeriod(p domain.Period) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.periods = append(s.periods, p)
}

// ReplacePeriod заменяет период с тем же id
func (s *Session) ReplacePeriod(p domain.Period) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.periods {
		if s.periods[i].ID == p.ID {
			s.periods[i] = p
			return
		}
	}
}

// RemovePeriod удаляет период из кэша
func (s *Session) RemovePeriod(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.periods {
		if s.periods[i].ID == id {
			s.periods = append(s.periods[:i], s.periods[i+1:]...)
			return
		}
	}
}
