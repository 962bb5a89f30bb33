package service

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// periodNamePattern - название периода это год из четырех цифр
var periodNamePattern = regexp.MustCompile(`^\d{4}$`)

// newValidator создает validator с правилами сервиса
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("period_year", func(fl validator.FieldLevel) bool {
		return ValidPeriodName(fl.Field().String())
	})
	return v
}

type credentials struct {
	Login    string `validate:"required,max=255"`
	Password string `validate:"required"`
}

type periodInput struct {
	Name string `validate:"period_year"`
}

// ValidPeriodName сообщает, можно ли отправить название периода на бэкенд
func ValidPeriodName(name string) bool {
	return periodNamePattern.MatchString(name)
}

// fieldErrors возвращает поля, не прошедшие проверку
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
