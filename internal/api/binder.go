package api

import (
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// Binder decodes JSON request bodies with sonic instead of encoding/json.
type Binder struct{}

func NewBinder() *Binder { return &Binder{} }

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	if ctype != "" && !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "expected application/json")
	}

	if err := sonic.ConfigDefault.NewDecoder(req.Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
