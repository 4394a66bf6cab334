package util

import (
	"github.com/dopameter/dopameter_api/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("emoji", validateEmoji)
	validate.RegisterValidation("contenttype", validateContentType)
}

func validateEmoji(fl validator.FieldLevel) bool {
	return model.ValidEmoji(fl.Field().String())
}

func validateContentType(fl validator.FieldLevel) bool {
	return model.ValidContentType(fl.Field().String())
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
