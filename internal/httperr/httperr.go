package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromBusiness maps a business error to its HTTP representation. Unknown
// errors degrade to a generic 500 so the read path never panics outward.
func FromBusiness(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch be.Code {
	case CodeAppointmentNotFound:
		NotFound(c, be.Code, "Appointment not found.")
	case CodeDoctorNotFound:
		NotFound(c, be.Code, "Doctor not found.")
	case CodePatientNotFound:
		NotFound(c, be.Code, "Patient not found.")
	case CodeSlotConflict:
		Conflict(c, be.Code, "Doctor is busy at that time. Please select another time slot.")
	case CodeInvalidState:
		Unprocessable(c, be.Code, "Appointment is not in a valid state for this operation.")
	case CodeValidation:
		BadRequest(c, be.Code, "Missing or malformed required field.")
	default:
		Internal(c, be.Code, "Unexpected error.")
	}
}

// IsUniqueViolation reports whether err is a Postgres duplicate-key error
// (SQLSTATE 23505), raised by the partial unique index on live slots.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
