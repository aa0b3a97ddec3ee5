package attendance

import (
	"github.com/go-playground/validator/v10"

	"github.com/meridianedu/portal/core"
)

var (
	statusTag  = "attstatus"
	statusText = "status must be one of: present, absent, late"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(statusTag, statusText)
}

// statusValidation checks that the provided status is a known Status.
func statusValidation(fl validator.FieldLevel) bool {
	return Status(fl.Field().String()).Valid()
}
