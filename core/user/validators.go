package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/meridianedu/portal/core"
)

var (
	portalRoleTag  = "portalrole"
	portalRoleText = "role must be one of: student, teacher"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(portalRoleTag, portalRoleValidation)
	core.RegisterCustomTranslation(portalRoleTag, portalRoleText)
}

// portalRoleValidation checks that the provided role is a known Role.
func portalRoleValidation(fl validator.FieldLevel) bool {
	return Role(fl.Field().String()).Valid()
}
