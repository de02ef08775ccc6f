package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/julienschmidt/httprouter"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

type profileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a *API) register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := a.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		a.writeDomainError(r.Context(), w, err)
		return
	}

	a.logger.Info(r.Context(), "user registered", "email", user.Email)
	writeJSON(w, http.StatusOK, map[string]string{"user": user.ID})
}

// login also mirrors the token into the auth-token response header, which is
// what the original API did.
func (a *API) login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, token, err := a.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password are both client errors here,
		// not 401s: the caller is not presenting a token yet.
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		a.writeDomainError(r.Context(), w, err)
		return
	}

	w.Header().Set(common.AuthTokenHeaderName, token)
	writeJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"name":  user.Name,
		"id":    user.ID,
	})
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, err := a.users.GetProfile(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		a.writeDomainError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

func (a *API) updateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := a.users.UpdateName(r.Context(), userIDFromContext(r.Context()), req.Name)
	if err != nil {
		a.writeDomainError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}
