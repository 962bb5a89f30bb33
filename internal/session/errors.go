package session

import "errors"

// ErrInvalidTransition возвращается при переходе, которого нет в таблице состояний
var ErrInvalidTransition = errors.New("invalid session transition")
