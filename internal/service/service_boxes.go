// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/store"
	"github.com/pmarkota/mystery-back/models"
)

// BoxColorSettingName is the global-settings key holding the shared box
// color.
const BoxColorSettingName = "box_color"

// DefaultBoxColor is reported when no color has ever been stored.
const DefaultBoxColor = "green"

// validBoxColors is the closed set of colors an admin may store.
var validBoxColors = map[string]struct{}{
	"green":       {},
	"black":       {},
	"green-black": {},
}

// loginPageTextSettings is the allow-list of global-settings keys that make
// up the configurable login-page text. Keys outside this list are silently
// discarded on update and never returned on read.
var loginPageTextSettings = []string{
	"login_title",
	"login_subtitle",
	"login_button_text",
	"login_footer_text",
}

// boxSelectionService is the concrete implementation of BoxSelectionService.
// It owns the credit-deduction selection workflow and the shared display
// settings, delegating atomicity to the BoxRepository and confirmation
// delivery to a SelectionNotifier.
type boxSelectionService struct {
	// boxRepository is the data-access layer for mystery boxes.
	boxRepository store.BoxRepository

	// userRepository resolves the selecting user's contact details for the
	// confirmation notification.
	userRepository store.UserRepository

	// settingRepository is the data-access layer for global settings.
	settingRepository store.SettingRepository

	// notifier receives a confirmation after every committed selection.
	// Never nil; a no-op implementation is injected when notifications are
	// disabled.
	notifier SelectionNotifier

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewBoxSelectionService constructs a BoxSelectionService backed by the
// given repositories. notifier must be non-nil.
func NewBoxSelectionService(boxRepository store.BoxRepository, userRepository store.UserRepository, settingRepository store.SettingRepository, notifier SelectionNotifier, logger *logger.Logger) BoxSelectionService {
	return &boxSelectionService{
		boxRepository:     boxRepository,
		userRepository:    userRepository,
		settingRepository: settingRepository,
		notifier:          notifier,
		logger:            logger,
	}
}

// GetBoxes returns every mystery box, selected or not, ordered by identifier.
func (b *boxSelectionService) GetBoxes(ctx context.Context) ([]models.MysteryBox, error) {
	log := logger.FromContext(ctx)

	boxes, err := b.boxRepository.GetBoxes(ctx)
	if err != nil {
		log.Err(err).Msg("listing boxes failed")
		return nil, fmt.Errorf("listing boxes failed: %w", err)
	}

	return boxes, nil
}

// GetBox looks up a single box by its raw string identifier.
//
// The result is a slice holding either the one matching box or nothing:
// an unknown identifier yields an empty slice rather than an error.
//
// Returns ErrInvalidInput if rawID is not a positive integer.
func (b *boxSelectionService) GetBox(ctx context.Context, rawID string) ([]models.MysteryBox, error) {
	log := logger.FromContext(ctx)

	boxID, err := parseID(rawID)
	if err != nil {
		log.Error().Str("rawID", rawID).Msg("invalid box id")
		return nil, ErrInvalidInput
	}

	box, err := b.boxRepository.GetBox(ctx, boxID)
	if err != nil {
		if errors.Is(err, store.ErrNoBoxWasFound) {
			return []models.MysteryBox{}, nil
		}
		log.Err(err).Int64("id", boxID).Msg("box lookup by id failed")
		return nil, fmt.Errorf("box lookup by id failed: %w", err)
	}

	return []models.MysteryBox{box}, nil
}

// SubmitSelectedBoxes marks every box in boxIDs as selected by userID and
// deducts one credit per box, atomically. Duplicate identifiers in boxIDs
// are collapsed before submission so each box costs exactly one credit.
//
// On success a confirmation is handed to the notifier; delivery is
// best-effort and never affects the returned result.
//
// Returns the claimed boxes or:
//   - ErrMissingField if boxIDs is empty.
//   - ErrInvalidInput if any identifier is non-positive.
//   - store.ErrBoxUnavailable (wrapped) if any box is unknown or already
//     selected; no credits are deducted.
//   - store.ErrInsufficientCredits (wrapped) if the balance cannot cover the
//     selection; no boxes are marked.
func (b *boxSelectionService) SubmitSelectedBoxes(ctx context.Context, userID int64, boxIDs []int64) ([]models.MysteryBox, error) {
	log := logger.FromContext(ctx)

	if len(boxIDs) == 0 {
		log.Error().Int64("userID", userID).Msg("no box ids submitted")
		return nil, ErrMissingField
	}

	uniqueIDs := make([]int64, 0, len(boxIDs))
	seen := make(map[int64]struct{}, len(boxIDs))
	for _, id := range boxIDs {
		if id <= 0 {
			log.Error().Int64("userID", userID).Int64("boxID", id).Msg("non-positive box id submitted")
			return nil, ErrInvalidInput
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniqueIDs = append(uniqueIDs, id)
	}

	selectedBoxes, remainingCredits, err := b.boxRepository.SubmitSelection(ctx, userID, uniqueIDs)
	if err != nil {
		log.Err(err).Int64("userID", userID).Ints64("boxIDs", uniqueIDs).Msg("box selection submission failed")
		return nil, fmt.Errorf("box selection submission failed: %w", err)
	}

	log.Info().
		Int64("userID", userID).
		Int("selected", len(selectedBoxes)).
		Int64("remainingCredits", remainingCredits).
		Msg("box selection committed")

	b.sendConfirmation(ctx, userID, remainingCredits, selectedBoxes)

	return selectedBoxes, nil
}

// sendConfirmation resolves the user's contact details and hands a
// confirmation to the notifier. Failures are logged and swallowed; the
// selection is already committed.
func (b *boxSelectionService) sendConfirmation(ctx context.Context, userID int64, remainingCredits int64, selectedBoxes []models.MysteryBox) {
	log := logger.FromContext(ctx)

	user, err := b.userRepository.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("could not resolve user for selection confirmation")
		return
	}

	b.notifier.NotifySelection(models.SelectionConfirmation{
		Username:         user.Username,
		Email:            user.Email,
		RemainingCredits: remainingCredits,
		SelectedBoxes:    selectedBoxes,
	})
}

// ResetAllSelections clears the selection mark from every box and returns
// the number of boxes that were reset. Credits already spent are not
// refunded.
func (b *boxSelectionService) ResetAllSelections(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	reset, err := b.boxRepository.ResetAllSelections(ctx)
	if err != nil {
		log.Err(err).Msg("resetting box selections failed")
		return 0, fmt.Errorf("resetting box selections failed: %w", err)
	}

	log.Info().Int64("reset", reset).Msg("box selections reset")
	return reset, nil
}

// SetBoxColor stores the shared box color.
//
// Returns the persisted setting or ErrInvalidColor if color is outside the
// allowed enum.
func (b *boxSelectionService) SetBoxColor(ctx context.Context, color string) (models.GlobalSetting, error) {
	log := logger.FromContext(ctx)

	if _, ok := validBoxColors[color]; !ok {
		log.Error().Str("color", color).Msg("invalid box color submitted")
		return models.GlobalSetting{}, ErrInvalidColor
	}

	setting, err := b.settingRepository.UpsertSetting(ctx, BoxColorSettingName, color)
	if err != nil {
		log.Err(err).Str("color", color).Msg("storing box color failed")
		return models.GlobalSetting{}, fmt.Errorf("storing box color failed: %w", err)
	}

	return setting, nil
}

// GetBoxColor returns the shared box color, falling back to DefaultBoxColor
// when no color has ever been stored.
func (b *boxSelectionService) GetBoxColor(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	setting, err := b.settingRepository.GetSetting(ctx, BoxColorSettingName)
	if err != nil {
		if errors.Is(err, store.ErrNoSettingWasFound) {
			return DefaultBoxColor, nil
		}
		log.Err(err).Msg("reading box color failed")
		return "", fmt.Errorf("reading box color failed: %w", err)
	}

	return setting.Value, nil
}

// GetLoginPageText returns the stored login-page text settings keyed by
// setting name. Keys that were never stored are absent from the map.
func (b *boxSelectionService) GetLoginPageText(ctx context.Context) (map[string]string, error) {
	log := logger.FromContext(ctx)

	settings, err := b.settingRepository.GetSettings(ctx, loginPageTextSettings)
	if err != nil {
		log.Err(err).Msg("reading login page text failed")
		return nil, fmt.Errorf("reading login page text failed: %w", err)
	}

	text := make(map[string]string, len(settings))
	for _, setting := range settings {
		text[setting.Name] = setting.Value
	}

	return text, nil
}

// UpdateLoginPageText stores the given login-page text values. Keys outside
// the allow-list are discarded; the update is all-or-nothing across the
// surviving keys.
//
// Returns the persisted settings or ErrNoValidSettings when nothing
// survives filtering.
func (b *boxSelectionService) UpdateLoginPageText(ctx context.Context, settings map[string]string) ([]models.GlobalSetting, error) {
	log := logger.FromContext(ctx)

	filtered := make(map[string]string, len(settings))
	for _, name := range loginPageTextSettings {
		if value, ok := settings[name]; ok {
			filtered[name] = value
		}
	}

	if len(filtered) == 0 {
		log.Error().Int("submitted", len(settings)).Msg("login page text update carries no allowed keys")
		return nil, ErrNoValidSettings
	}

	updated, err := b.settingRepository.UpsertSettings(ctx, filtered)
	if err != nil {
		log.Err(err).Msg("storing login page text failed")
		return nil, fmt.Errorf("storing login page text failed: %w", err)
	}

	return updated, nil
}
