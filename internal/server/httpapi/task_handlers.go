package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/julienschmidt/httprouter"
)

type createTaskRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      models.Status `json:"status"`
}

type updateTaskRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *models.Status `json:"status"`
}

func (a *API) listTasks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tasks, err := a.tasks.List(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		a.writeDomainError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (a *API) createTask(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	task, err := a.tasks.Create(r.Context(), userIDFromContext(r.Context()), req.Title, req.Description, req.Status)
	if err != nil {
		a.writeDomainError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (a *API) updateTask(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	patch := models.TaskPatch{Title: req.Title, Description: req.Description, Status: req.Status}

	task, err := a.tasks.Update(r.Context(), userIDFromContext(r.Context()), ps.ByName("id"), patch)
	if err != nil {
		a.writeDomainError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (a *API) deleteTask(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	task, err := a.tasks.Delete(r.Context(), userIDFromContext(r.Context()), ps.ByName("id"))
	if err != nil {
		a.writeDomainError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}
