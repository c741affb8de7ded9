// errors.go — ошибки бизнес-логики сервисного слоя.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/bigkaa/goartstore/catalog-console/internal/domain/model"
	"github.com/bigkaa/goartstore/catalog-console/internal/store"
)

var (
	// ErrNotFound — ресурс не найден.
	ErrNotFound = errors.New("ресурс не найден")
	// ErrForbidden — у действующего пользователя недостаточно прав.
	ErrForbidden = errors.New("недостаточно прав")
	// ErrValidation — ошибка валидации входных данных.
	ErrValidation = errors.New("ошибка валидации")
)

// validate — общий валидатор входных данных сервисов.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := model.RegisterValidations(v); err != nil {
		panic(fmt.Sprintf("регистрация правил валидации: %v", err))
	}
	return v
}

// validateStruct проверяет структуру по тегам validate и сводит
// нарушения в одну ошибку ErrValidation.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.ActualTag() {
		case "finite":
			msgs = append(msgs, fmt.Sprintf("поле %s должно быть конечным числом", fe.Field()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("поле %s не может быть отрицательным", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("поле %s: недопустимое значение %v", fe.Field(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("поле %s некорректно", fe.Field()))
		}
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, ", "))
}

// mapStoreError переводит ошибки контейнера состояния в ошибки сервисного слоя.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, store.ErrActingUser):
		return fmt.Errorf("%w: %v", ErrForbidden, err)
	default:
		return err
	}
}
