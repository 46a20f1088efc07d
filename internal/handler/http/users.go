package http

import (
	"encoding/json"
	"net/http"

	"github.com/pmarkota/mystery-back/internal/app"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/utils"
	"github.com/pmarkota/mystery-back/models"
)

// createUserRequest is the JSON body of the admin create-user endpoint.
type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Credits  int64  `json:"credits"`
}

// userIDRequest carries a user identifier in the request body. The
// identifier arrives as a JSON string or number depending on the client, so
// it is kept raw and parsed by the service layer.
type userIDRequest struct {
	ID json.Number `json:"id"`
}

// updateCreditsRequest is the JSON body of the update-user-credits endpoint.
type updateCreditsRequest struct {
	ID      json.Number `json:"id"`
	Credits int64       `json:"credits"`
}

// searchUsersRequest is the JSON body of the search endpoint.
type searchUsersRequest struct {
	Username string `json:"username"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserDirectoryService.CreateUser(ctx, req.Username, req.Password, req.Email, req.Credits)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("user created")

	utils.WriteJSON(w, models.Response{
		Message: app.MsgUserCreated,
		Data:    []models.User{user},
	}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req userIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := h.services.UserDirectoryService.DeleteUser(ctx, req.ID.String()); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("id", req.ID.String()).Msg("user deleted")

	utils.WriteJSON(w, models.Response{Message: app.MsgUserDeleted}, http.StatusOK)
}

func (h *Handler) updateUserCredits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req updateCreditsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserDirectoryService.UpdateUserCredits(ctx, req.ID.String(), req.Credits)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.ID).Int64("credits", user.Credits).Msg("user credits updated")

	utils.WriteJSON(w, models.Response{
		Message: app.MsgUserCreditsUpdated,
		Data:    []models.User{user},
	}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req userIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	users, err := h.services.UserDirectoryService.GetUser(ctx, req.ID.String())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Message: app.MsgUserFetched,
		Data:    users,
	}, http.StatusOK)
}

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.UserDirectoryService.GetAllUsers(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Message: app.MsgUsersFetched,
		Data:    users,
	}, http.StatusOK)
}

func (h *Handler) searchUsersByUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req searchUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	users, err := h.services.UserDirectoryService.SearchUsersByUsername(ctx, req.Username)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Message: app.MsgUsersFetched,
		Data:    users,
	}, http.StatusOK)
}
