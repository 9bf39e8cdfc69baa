package editor

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var zoneColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// RegisterValidators installs the custom binding validators used by the
// editor request DTOs. Call once at startup.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("zonecolor", func(fl validator.FieldLevel) bool {
			return zoneColorPattern.MatchString(fl.Field().String())
		})
	}
}
