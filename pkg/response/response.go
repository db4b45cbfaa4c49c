// Package response writes the API's JSON envelope: {success, count?, data}
// on the happy path and {success:false, error, message, errors?} on failure.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Body struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Body{Success: true, Data: data})
}

// List is OK plus the element count the original API reports on collections.
func List(c echo.Context, count int, data interface{}) error {
	return c.JSON(http.StatusOK, Body{Success: true, Count: &count, Data: data})
}

func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Body{Success: true, Message: message})
}

func Fail(c echo.Context, status int, errType, message string) error {
	return c.JSON(status, Body{Success: false, Error: errType, Message: message})
}

func FailValidation(c echo.Context, fields []FieldError) error {
	return c.JSON(http.StatusBadRequest, Body{
		Success: false,
		Error:   "Validation Error",
		Message: "Invalid input data",
		Errors:  fields,
	})
}
