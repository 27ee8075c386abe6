package request

import (
	"errors"

	reqdomain "rosterd/internal/domain/request"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs custom binding rules on gin's validator
// engine. Call once at startup before serving.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation("timeofftype", func(fl validator.FieldLevel) bool {
		return reqdomain.TimeOffType(fl.Field().String()).IsValid()
	})
}
