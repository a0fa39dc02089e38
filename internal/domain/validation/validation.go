// Package validation проверяет ограничения полей доменных моделей
// через go-playground/validator. Бизнес-правила (уникальность, даты)
// проверяются в сервисах.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"filmorate/internal/domain/models"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var messageTemplates = map[string]string{
	"required":     "%s is required",
	"notblank":     "%s must not be blank",
	"nowhitespace": "%s must not contain whitespace",
	"email":        "%s must be a valid email address",
}

var messageWithParamTemplates = map[string]string{
	"max": "%s must be at most %s characters",
	"gt":  "%s must be greater than %s",
}

func get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", notBlank)
		_ = validate.RegisterValidation("nowhitespace", noWhitespace)
	})
	return validate
}

// Struct проверяет теги `validate` и возвращает ошибку,
// обернутую в models.ErrValidation.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, translate(fe))
	}

	return fmt.Errorf("%w: %s", models.ErrValidation, strings.Join(messages, "; "))
}

func translate(fe validator.FieldError) string {
	field := fieldName(fe.Field())

	if template, ok := messageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := messageWithParamTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

// fieldName приводит имя поля к виду, в котором оно приходит в JSON
func fieldName(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func noWhitespace(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}
