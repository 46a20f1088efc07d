package http

import (
	"encoding/json"
	"net/http"

	"github.com/pmarkota/mystery-back/internal/app"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/utils"
	"github.com/pmarkota/mystery-back/models"
)

// credentialsRequest is the JSON body shared by the login and admin-create
// endpoints.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) loginUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.LoginUser(ctx, req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Str("username", user.Username).Msg("user logged in")

	utils.WriteJSON(w, models.UserLoginResponse{
		Message: app.MsgUserLoginSuccessful,
		User:    user,
		Token:   token.String(),
	}, http.StatusOK)
}

func (h *Handler) loginAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	admin, token, err := h.services.AuthService.LoginAdmin(ctx, req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", admin.ID).Str("username", admin.Username).Msg("admin logged in")

	utils.WriteJSON(w, models.AdminLoginResponse{
		Message: app.MsgAdminLoginSuccessful,
		Admin:   admin.Info(),
		Token:   token.String(),
	}, http.StatusOK)
}

func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	admin, err := h.services.AuthService.CreateAdmin(ctx, req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", admin.ID).Str("username", admin.Username).Msg("admin created")

	utils.WriteJSON(w, models.Response{
		Message: app.MsgAdminCreated,
		Data:    []models.AdminInfo{admin.Info()},
	}, http.StatusOK)
}
