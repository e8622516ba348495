package api

import (
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/obrasync/cashbox/internal/domain"
)

// decimalValue представляет decimal.Decimal для валидатора строкой, чтобы к суммам применялись
// строковые правила.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func inScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(domain.AmountScale))
}

// validateMoney сумма неотрицательна и не точнее копейки.
func validateMoney(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && !d.IsNegative() && inScale(d)
}

// validatePositiveMoney сумма строго больше нуля и не точнее копейки.
func validatePositiveMoney(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && d.IsPositive() && inScale(d)
}

// validateNonZeroMoney ненулевая сумма со знаком, не точнее копейки.
func validateNonZeroMoney(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && !d.IsZero() && inScale(d)
}

func validateCurrency(fl validator.FieldLevel) bool {
	return domain.Currency(fl.Field().String()).IsValid()
}

func validateMovementKind(fl validator.FieldLevel) bool {
	return domain.MovementKind(fl.Field().String()).IsValid()
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	validations := map[string]validator.Func{
		"money":          validateMoney,
		"positive_money": validatePositiveMoney,
		"nonzero_money":  validateNonZeroMoney,
		"currency":       validateCurrency,
		"movement_kind":  validateMovementKind,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validator registration: %w", err)
		}
	}
	return nil
}
