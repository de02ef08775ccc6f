// Package httpapi exposes the REST surface of the task tracker and enforces
// the authentication boundary: every protected route passes through
// requireAuth, and downstream handlers read the caller identity from the
// request context only.
package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/julienschmidt/httprouter"
)

type API struct {
	logger    logging.Logger
	users     *services.UserService
	tasks     *services.TaskService
	jwtSecret []byte
}

func NewAPI(l logging.Logger, us *services.UserService, ts *services.TaskService, secretKey string) *API {
	return &API{
		logger:    l.With("module", "httpapi"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the route table. Paths mirror the original API.
func (a *API) Router() http.Handler {
	router := httprouter.New()

	router.Handle(http.MethodGet, "/health", a.health)

	router.Handle(http.MethodPost, "/api/user/register", a.register)
	router.Handle(http.MethodPost, "/api/user/login", a.login)
	router.Handle(http.MethodGet, "/api/user/profile", a.requireAuth(a.getProfile))
	router.Handle(http.MethodPut, "/api/user/profile", a.requireAuth(a.updateProfile))

	router.Handle(http.MethodGet, "/api/tasks", a.requireAuth(a.listTasks))
	router.Handle(http.MethodPost, "/api/tasks", a.requireAuth(a.createTask))
	router.Handle(http.MethodPut, "/api/tasks/:id", a.requireAuth(a.updateTask))
	router.Handle(http.MethodDelete, "/api/tasks/:id", a.requireAuth(a.deleteTask))

	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, p any) {
		a.logger.Error(r.Context(), "panic in handler", "path", r.URL.Path, "panic", p)
		writeError(w, http.StatusInternalServerError, "internal error")
	}

	return router
}

func (a *API) health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
