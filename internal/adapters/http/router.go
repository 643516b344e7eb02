// Package http is the inbound HTTP adapter: the chi router, the server
// lifecycle and, in subpackages, handlers, DTOs and middleware.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/activity-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/activity-roster/internal/adapters/http/handlers"
)

// CodeMethodNotAllowed is the problem code for a known path hit with the
// wrong method.
const CodeMethodNotAllowed = "method_not_allowed"

// NewRouter mounts the roster and health routes behind middlewares, which
// run in the order given. Unknown paths and methods get problem responses
// like every other failure.
func NewRouter(
	activityHandler *handlers.ActivityHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusNotFound, dto.CodeNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, r.Method+" is not supported here")
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", healthHandler.Liveness)
		r.Get("/ready", healthHandler.Readiness)
	})

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", activityHandler.ListActivities)
		r.Get("/{name}", activityHandler.GetActivity)
		r.Post("/{name}/signup", activityHandler.Signup)
		r.Delete("/{name}/participants", activityHandler.Unregister)
	})

	return r
}
