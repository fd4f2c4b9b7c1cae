package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ovalentin/tracker/internal/domain"
	"github.com/ovalentin/tracker/internal/pkg/constants"
)

func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		if he, ok := e.(*echo.HTTPError); ok {
			code = he.Code
			msg = fmt.Sprintf("%v", he.Message)
			break
		}
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
