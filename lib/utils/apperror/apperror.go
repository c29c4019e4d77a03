package apperror

import (
	"github.com/pkg/errors"
)

// Ошибки уровня домена. Все они завершают только текущее действие
// пользователя, сохраненные данные остаются без изменений

var ErrNotFound = errors.New("запись не найдена")

// Ошибка входных данных, отбрасывается до обращения к хранилищу
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) error {
	return ValidationError{Message: message}
}

func IsValidation(err error) bool {
	var vErr ValidationError
	return errors.As(err, &vErr)
}

// Перевод кандидата на этап запрещен, с указанием причины
type TransitionDeniedError struct {
	Reason string
}

func (e TransitionDeniedError) Error() string {
	return e.Reason
}

func NewTransitionDenied(reason string) error {
	return TransitionDeniedError{Reason: reason}
}

func IsTransitionDenied(err error) bool {
	var tErr TransitionDeniedError
	return errors.As(err, &tErr)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
