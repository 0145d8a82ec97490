package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"venue-desk/internal/domain/assignment"
	"venue-desk/internal/domain/catalog"
	"venue-desk/internal/domain/event"
)

var scopeValidator validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	return ok && event.Scope(s).IsValid()
}

var assignmentStateValidator validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	return ok && assignment.State(s).IsValid()
}

var catalogKindValidator validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	return ok && catalog.Kind(s).IsValid()
}

// RegisterValidators adds the domain binding tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	for tag, fn := range map[string]validator.Func{
		"scope":            scopeValidator,
		"assignment_state": assignmentStateValidator,
		"catalog_kind":     catalogKindValidator,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
