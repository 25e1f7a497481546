// Package httperr maps application errors onto the API's error envelope.
// The frontend expects FastAPI-style bodies: {"detail": "..."}.
package httperr

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/serviapp/catalog-service/internal/apperr"
)

type detailResponse struct {
	Detail string `json:"detail"`
}

// Detail writes the error envelope with the given status.
func Detail(c echo.Context, status int, msg string) error {
	return c.JSON(status, detailResponse{Detail: msg})
}

// JSON translates an error from the usecase layer: validation failures are 400
// with their own message, everything else is an opaque 500.
func JSON(c echo.Context, err error) error {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		return Detail(c, http.StatusBadRequest, verr.Message)
	}
	return Detail(c, http.StatusInternalServerError, "error interno del servidor")
}
