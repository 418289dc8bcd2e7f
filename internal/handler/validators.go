package handler

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations регистрирует дополнительные правила валидации
// на движке binding-а Gin. Вызывается один раз при старте приложения
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	// notblank: строка должна содержать хотя бы один непробельный символ.
	// Стандартный required пропускает строки из одних пробелов
	return v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}
