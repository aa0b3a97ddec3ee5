package timetable

import (
	"github.com/go-playground/validator/v10"

	"github.com/meridianedu/portal/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "must be a class day, Monday through Saturday"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(weekdayTag, weekdayText)
}

// weekdayValidation checks that the provided day is in Days.
func weekdayValidation(fl validator.FieldLevel) bool {
	return ValidDay(fl.Field().String())
}
