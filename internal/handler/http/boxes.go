package http

import (
	"encoding/json"
	"net/http"

	"github.com/pmarkota/mystery-back/internal/app"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/utils"
	"github.com/pmarkota/mystery-back/models"
)

// submitBoxesRequest is the JSON body of the selection submission endpoint.
type submitBoxesRequest struct {
	UserID int64   `json:"userId"`
	BoxIDs []int64 `json:"boxIds"`
}

// setBoxColorRequest is the JSON body of the admin set-box-color endpoint.
type setBoxColorRequest struct {
	Color string `json:"color"`
}

func (h *Handler) getBoxes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	boxes, err := h.services.BoxSelectionService.GetBoxes(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Message: app.MsgBoxesFetched,
		Data:    boxes,
	}, http.StatusOK)
}

// getBox resolves a single box; the identifier arrives as the "id" query
// parameter.
func (h *Handler) getBox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	boxes, err := h.services.BoxSelectionService.GetBox(ctx, r.URL.Query().Get("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Message: app.MsgBoxFetched,
		Data:    boxes,
	}, http.StatusOK)
}

func (h *Handler) submitSelectedBoxes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req submitBoxesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	boxes, err := h.services.BoxSelectionService.SubmitSelectedBoxes(ctx, req.UserID, req.BoxIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Message: app.MsgBoxesSubmitted,
		Data:    boxes,
	}, http.StatusOK)
}

func (h *Handler) setAllBoxesToUnselected(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	reset, err := h.services.BoxSelectionService.ResetAllSelections(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("reset", reset).Msg("all boxes set to unselected")

	utils.WriteJSON(w, models.Response{Message: app.MsgBoxesUnselected}, http.StatusOK)
}

func (h *Handler) setBoxColor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req setBoxColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	setting, err := h.services.BoxSelectionService.SetBoxColor(ctx, req.Color)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("color", setting.Value).Msg("box color updated")

	utils.WriteJSON(w, models.Response{
		Message: app.MsgBoxColorUpdated,
		Data:    []models.GlobalSetting{setting},
	}, http.StatusOK)
}

func (h *Handler) getBoxColor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	color, err := h.services.BoxSelectionService.GetBoxColor(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ColorResponse{
		Message: app.MsgBoxColorFetched,
		Color:   color,
	}, http.StatusOK)
}

func (h *Handler) getLoginPageText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	text, err := h.services.BoxSelectionService.GetLoginPageText(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Message: app.MsgLoginPageTextFetched,
		Data:    text,
	}, http.StatusOK)
}

func (h *Handler) updateLoginPageText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	settings, err := h.services.BoxSelectionService.UpdateLoginPageText(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int("updated", len(settings)).Msg("login page text updated")

	utils.WriteJSON(w, models.Response{
		Message: app.MsgLoginPageTextUpdated,
		Data:    settings,
	}, http.StatusOK)
}
