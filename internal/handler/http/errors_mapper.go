package http

import (
	"errors"
	"net/http"

	"github.com/pmarkota/mystery-back/internal/app"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/service"
	"github.com/pmarkota/mystery-back/internal/store"
	"github.com/pmarkota/mystery-back/internal/utils"
	"github.com/pmarkota/mystery-back/models"
)

var errorStatusMap = map[error]int{
	service.ErrMissingField:    http.StatusBadRequest,
	service.ErrInvalidInput:    http.StatusBadRequest,
	service.ErrInvalidColor:    http.StatusBadRequest,
	service.ErrNoValidSettings: http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrNotAdminToken: http.StatusForbidden,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrAdminAlreadyExists:    http.StatusConflict,
	store.ErrBoxUnavailable:        http.StatusConflict,
	store.ErrInsufficientCredits:   http.StatusConflict,

	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrNoBoxWasFound:     http.StatusNotFound,
	store.ErrNoSettingWasFound: http.StatusNotFound,

	store.ErrStoreUnavailable:     http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicError returns the client-facing error text for err. Known sentinels
// expose their own message; anything else collapses to a generic text so
// internal details never leak.
func publicError(err error) string {
	for target, status := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}
		if status >= http.StatusInternalServerError {
			break
		}
		return target.Error()
	}
	return app.MsgSomethingWentWrong
}

// writeError logs err and writes the uniform error envelope with the status
// mapped from the error chain.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: publicError(err)}, status)
}
