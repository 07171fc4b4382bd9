package api

import (
	stderrors "errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"sunsip.app/pkg/errors"
	"sunsip.app/pkg/validation"
)

var registerOnce sync.Once

// registerValidators installs the custom tags on gin's validator and reports fields by their json names
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return field.Name
		})

		_ = v.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
			return validation.IsValidRating(int(fl.Field().Int()))
		})
	})
}

// bindingError converts a gin binding failure into a field-level validation error
func bindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return errors.NewValidationError("Invalid request format")
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = fieldMessage(fieldErr)
	}
	return errors.NewFieldValidationError("Invalid request", fields)
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "rating":
		return "must be between 1 and 5"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	case "len":
		return "must have length " + fieldErr.Param()
	default:
		return "is invalid"
	}
}

// bindJSON binds the request body and answers 400 on failure
func (s *HTTPServerAdapter) bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		s.handleError(c, bindingError(err))
		return false
	}
	return true
}

// bindQuery binds query parameters and answers 400 on failure
func (s *HTTPServerAdapter) bindQuery(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindQuery(target); err != nil {
		s.handleError(c, bindingError(err))
		return false
	}
	return true
}

// idParam parses the :id path parameter of a combination
func (s *HTTPServerAdapter) idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		s.handleError(c, errors.NewFieldValidationError("Invalid request", map[string]string{"id": "must be a positive integer"}))
		return 0, false
	}
	return uint(id), true
}
