package handlers

import (
	"fmt"
	"strings"

	"chimichangapp/internal/schema"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fieldErrorDescriptor is one entry in the "detail" list of a 422
// response: where the bad value was found, what was wrong with it, and a
// machine-readable error code.
type fieldErrorDescriptor struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// validationFailure builds the 422 response envelope.
func validationFailure(descriptors ...fieldErrorDescriptor) gin.H {
	return gin.H{"detail": descriptors}
}

// schemaErrorDescriptor translates a schema.FieldError into a descriptor
// located inside the request body.
func schemaErrorDescriptor(fieldErr *schema.FieldError) fieldErrorDescriptor {
	errType := "type_error"
	if fieldErr.Kind == schema.KindMissingField {
		errType = "value_error.missing"
	}
	return fieldErrorDescriptor{
		Loc:  []string{"body", fieldErr.Field},
		Msg:  fieldErr.Message,
		Type: errType,
	}
}

// queryErrorDescriptors translates validator errors on a query DTO into
// descriptors located inside the query string.
func queryErrorDescriptors(err error) []fieldErrorDescriptor {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []fieldErrorDescriptor{{Loc: []string{"query"}, Msg: err.Error(), Type: "value_error"}}
	}

	descriptors := make([]fieldErrorDescriptor, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldName := strings.ToLower(fieldError.Field())
		msg := fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			msg = "field required"
		case "min":
			msg = fmt.Sprintf("ensure this value has at least %s characters", fieldError.Param())
		case "max":
			msg = fmt.Sprintf("ensure this value has at most %s characters", fieldError.Param())
		}
		descriptors = append(descriptors, fieldErrorDescriptor{
			Loc:  []string{"query", fieldName},
			Msg:  msg,
			Type: "value_error." + fieldError.Tag(),
		})
	}
	return descriptors
}
