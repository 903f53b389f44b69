package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"todo-api/pkg/resource"
)

const defaultBodyLimit = "1M"

// Setup registers the middleware chain shared by every route.
// Paths are matched strictly: "/api/todos/" is not the collection route.
func Setup(e *echo.Echo) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	SetupRequestLogger(e)
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echomw.BodyLimit(resource.GetStringOrDefault("app.server.body-limit", defaultBodyLimit)))
}
