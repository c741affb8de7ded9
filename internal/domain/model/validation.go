package model

import (
	"math"

	"github.com/go-playground/validator"
)

// RegisterValidations добавляет в валидатор доменные теги:
//   - finite — число не бесконечно и не NaN
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return IsFinite(fl.Field().Float())
	})
}

// IsFinite сообщает, что значение пригодно для цены.
func IsFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
