package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/internal/apperrors"
)

// respondError writes err as an ErrorResponse with the status its type maps to
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := apperrors.StatusCode(err)
	resp := ErrorResponse{Code: apperrors.Code(err)}

	var (
		validationErr *apperrors.ValidationError
		reconcileErr  *apperrors.ReconciliationError
		upstreamErr   *apperrors.UpstreamError
		notFoundErr   *apperrors.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		resp.Error = "invalid request"
		resp.Fields = validationErr.Fields
	case errors.As(err, &notFoundErr):
		resp.Error = notFoundErr.Error()
	case errors.As(err, &reconcileErr):
		resp.Error = "generation failed"
		resp.State = reconcileErr.State
		resp.RawResponse = reconcileErr.RawText
	case errors.As(err, &upstreamErr):
		resp.Error = "upstream service unavailable"
		resp.Service = upstreamErr.Service
		resp.RawResponse = upstreamErr.RawText
	default:
		resp.Error = "internal server error"
	}

	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	}
	switch {
	case status == http.StatusNotFound:
		logger.Debug("resource not found", fields...)
	case status < http.StatusInternalServerError:
		logger.Info("request rejected", fields...)
	default:
		logger.Error("request failed", fields...)
	}

	c.AbortWithStatusJSON(status, resp)
}

// bindJSON decodes the request body, reporting problems as a ValidationError
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return apperrors.NewValidationError(typeErr.Field, "must be "+jsonTypeName(typeErr.Type.Kind()))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.NewValidationError("body", "must be valid JSON")
	case errors.Is(err, io.EOF):
		return apperrors.NewValidationError("body", "is required")
	default:
		return apperrors.NewValidationError("body", err.Error())
	}
}

func jsonTypeName(k reflect.Kind) string {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
