package domain

import (
	"sync"

	"benchmarks/internal/core/requests"
	"benchmarks/internal/platform/net/http/bind"
)

var registerOnce sync.Once

// RegisterValidators adds the period tag to the shared validator
// Safe to call from every module constructor
func RegisterValidators() {
	registerOnce.Do(func() {
		err := bind.RegisterValidation("period", "{0} must be one of current_week, current_month, current_year, all_time", func(fl bind.FieldLevel) bool {
			_, err := requests.ParsePeriod(fl.Field().String())
			return err == nil
		})
		if err != nil {
			panic(err)
		}
	})
}
