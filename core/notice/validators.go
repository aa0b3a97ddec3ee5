package notice

import (
	"github.com/go-playground/validator/v10"

	"github.com/meridianedu/portal/core"
)

var (
	priorityTag  = "priority"
	priorityText = "priority must be one of: low, medium, high"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(priorityTag, priorityValidation)
	core.RegisterCustomTranslation(priorityTag, priorityText)
}

// priorityValidation checks that the provided priority is a known Priority.
func priorityValidation(fl validator.FieldLevel) bool {
	return Priority(fl.Field().String()).Valid()
}
