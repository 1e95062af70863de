package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"booking-service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Envelope is the response shape for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func respondFail(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: false, Message: message, Data: data})
}

var registerOnce sync.Once

// RegisterValidation makes validator report JSON field names and makes gin's
// JSON binding reject unknown fields.
func RegisterValidation() {
	registerOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
}

// bindBody binds a JSON body and runs the binding rules. The first problem
// found is returned as a domain.ValidationError. The body is cached by gin so
// a second JSON value after the object can be rejected too.
func bindBody[T any](c *gin.Context, dst *T) error {
	if c.Request.Body == nil {
		return domain.ValidationError{Msg: "request body is required"}
	}
	err := c.ShouldBindBodyWithJSON(dst)
	if raw, ok := c.Get(gin.BodyBytesKey); ok {
		if b, _ := raw.([]byte); len(bytes.TrimSpace(b)) > 0 && !json.Valid(b) {
			return domain.ValidationError{Msg: "invalid JSON payload", Err: err}
		}
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, io.EOF):
		return domain.ValidationError{Msg: "request body is required", Err: err}
	case errors.As(err, &verrs):
		return domain.ValidationError{Msg: validationMessage(err), Err: err}
	default:
		return domain.ValidationError{Msg: decodeMessage(err), Err: err}
	}
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%q must be a %s", typeErr.Field, typeErr.Type.Kind().String())
	}
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, "json: unknown field "); ok {
		return rest + " is not allowed"
	}
	return "invalid JSON payload"
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	respondFail(c, http.StatusNotFound, "Not found", nil)
}
