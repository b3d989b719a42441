package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/gamassss/urlist/internal/logger"
	"github.com/gamassss/urlist/pkg/response"
	"github.com/gamassss/urlist/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrListNotFound):
		response.NotFound(c, "List not found")
	case errors.Is(err, domain.ErrURLNotFound):
		response.NotFound(c, "URL not found")
	case errors.Is(err, domain.ErrSlugConflict):
		response.Conflict(c, "Slug already exists")
	default:
		logger.FromContext(c.Request.Context()).Error("Request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
		)
		response.InternalServerError(c)
	}
}

// pathID reads a UUID path parameter, answering 400 when it is malformed.
func pathID(c *gin.Context, param, entity string) (string, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.BadRequest(c, entity+" ID is invalid")
		return "", false
	}
	return id.String(), true
}

// bindJSON decodes and validates the request body into dst. A well-formed
// body with a wrongly typed field is reported as a field validation error.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			response.ValidationErrors(c, []response.ValidationError{{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("%s must be %s", typeErr.Field, jsonTypeName(typeErr.Type)),
			}})
			return false
		}
		response.BadRequest(c, "Invalid request body")
		return false
	}

	if errs := validator.Validate(dst); len(errs) > 0 {
		response.ValidationErrors(c, errs)
		return false
	}

	return true
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	default:
		return "a valid value"
	}
}
