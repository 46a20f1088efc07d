package http

import (
	"fmt"
	"net/http"

	"github.com/pmarkota/mystery-back/internal/app"
	"github.com/pmarkota/mystery-back/internal/utils"
	"github.com/pmarkota/mystery-back/models"
)

// health reports service liveness.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"status":  "ok",
		"message": app.MsgAPIRunning,
	}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error:   "Not Found",
		Message: fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path),
	}, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error:   "Method Not Allowed",
		Message: fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path),
	}, http.StatusMethodNotAllowed)
}
