// Package router defines how HTTP routes are registered for the API.
// Token protection is an explicit property of each route registration:
// every entry in the route table declares whether it sits behind the
// JWT middleware, so nothing is gated (or left open) by accident.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/movie-api/internal/handler"
	"github.com/moviehub/movie-api/internal/middleware"
)

// route binds one method+path to a handler along with its protection flag.
type route struct {
	method    string
	path      string
	handler   echo.HandlerFunc
	protected bool
}

// RegisterRoutes registers the full HTTP surface on the provided Echo
// instance. Mutating movie and review routes require a valid access
// token; reads, signup and signin do not.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, m *handler.MovieHandler, r *handler.ReviewHandler, jwtSecret string) {
	auth := middleware.JWTAuth(jwtSecret)

	routes := []route{
		{http.MethodGet, "/healthz", handler.Health, false},

		{http.MethodPost, "/signup", a.Signup, false},
		{http.MethodPost, "/signin", a.Signin, false},

		{http.MethodGet, "/movies", m.List, false},
		{http.MethodGet, "/movies/:title", m.Get, false},
		{http.MethodPost, "/movies", m.Create, true},
		{http.MethodPut, "/movies/:title", m.Update, true},
		{http.MethodDelete, "/movies/:title", m.Delete, true},

		{http.MethodPost, "/reviews", r.Create, true},
		{http.MethodGet, "/reviews", r.List, false},
	}

	for _, rt := range routes {
		if rt.protected {
			e.Add(rt.method, rt.path, rt.handler, auth)
		} else {
			e.Add(rt.method, rt.path, rt.handler)
		}
	}
}
