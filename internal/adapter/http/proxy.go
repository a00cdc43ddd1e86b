package http

import (
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// PassThroughProxy returns the proxy middleware forwarding every non-adapted
// request to the legacy backend, unmodified: method, headers and body are
// relayed as-is, and only the optional fixed prefix is stripped from the
// path. Adapted module paths and the gateway's own health endpoint are
// skipped so they reach the local handlers.
func PassThroughProxy(target *url.URL, stripPrefix string) echo.MiddlewareFunc {
	cfg := middleware.ProxyConfig{
		Balancer: middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{
			{URL: target},
		}),
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			if path == "/health" {
				return true
			}
			return Classify(path) != RoutePassThrough
		},
	}

	if stripPrefix != "" {
		prefix := "/" + strings.Trim(stripPrefix, "/")
		cfg.Rewrite = map[string]string{
			prefix + "/*": "/$1",
		}
	}

	return middleware.ProxyWithConfig(cfg)
}
