// Package validation собирает go-playground/validator с настройками сервиса
// и переводит его ошибки в список {поле, сообщение} для API.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const dateLayout = "2006-01-02"

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// New создает валидатор: имена полей берутся из json-тегов,
// добавлены теги slug и clock (время суток HH:MM, допускается 24:00)
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Ошибка возможна только при пустом имени тега
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsSlug(fl.Field().String())
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := types.NewTimeStringFromString(fl.Field().String())
		return err == nil
	})

	return v
}

// IsSlug проверяет идентификатор вида "kayak-2h"
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// FieldError ошибка валидации одного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors все найденные ошибки валидации
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Add добавляет ошибку поля
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// FromValidator переводит validator.ValidationErrors в Errors.
// Второй результат false, если err не ошибка валидации полей.
func FromValidator(err error) (Errors, bool) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, false
	}

	result := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result.Add(fieldPath(fe), fieldMessage(fe))
	}
	return result, true
}

// fieldPath отрезает имя корневой структуры: "PeriodDraft.schedule[0].startTime" -> "schedule[0].startTime"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " item(s)"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "len":
		return "must contain exactly " + fe.Param() + " items"
	case "slug":
		return "must contain only lowercase letters, digits, '-' and '_'"
	case "clock":
		return "must be a time in HH:MM format"
	case "datetime":
		if fe.Param() == dateLayout {
			return "must be a date in YYYY-MM-DD format"
		}
		return "has invalid format"
	default:
		return "is invalid"
	}
}
