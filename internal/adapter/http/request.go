// Package http provides the HTTP transport layer for the gateway: the route
// classifier, the legacy request binding, the adapted-search handler and the
// pass-through proxy to the legacy backend.
package http

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sajidmahamud835/ota-proxy/internal/domain"
)

// BindLegacyBody decodes a legacy request body into the untyped key/value
// map the domain layer consumes. Legacy callers post JSON, urlencoded forms
// or multipart forms interchangeably; an absent or undecodable body returns
// ErrEmptyRequest.
func BindLegacyBody(c echo.Context) (map[string]string, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return bindJSONBody(c)
	}
	return bindFormBody(c)
}

// bindJSONBody flattens a JSON object body into string key/values.
func bindJSONBody(c echo.Context) (map[string]string, error) {
	var raw map[string]interface{}
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return nil, domain.ErrEmptyRequest
	}
	if len(raw) == 0 {
		return nil, domain.ErrEmptyRequest
	}

	body := make(map[string]string, len(raw))
	for key, value := range raw {
		body[key] = stringify(value)
	}
	return body, nil
}

// bindFormBody reads urlencoded and multipart bodies via the form parser.
func bindFormBody(c echo.Context) (map[string]string, error) {
	params, err := c.FormParams()
	if err != nil || len(params) == 0 {
		return nil, domain.ErrEmptyRequest
	}

	body := make(map[string]string, len(params))
	for key, values := range params {
		if len(values) > 0 {
			body[key] = values[0]
		}
	}
	return body, nil
}

// stringify renders the dynamic JSON scalar types the legacy callers send.
func stringify(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}
