package models

// SelectionConfirmation is the payload handed to the notification service
// after a successful box selection commit. It is assembled inside the
// committed transaction's result, so the figures are consistent with what
// was actually persisted.
type SelectionConfirmation struct {
	Username         string       `json:"username"`
	Email            string       `json:"email"`
	RemainingCredits int64        `json:"remaining_credits"`
	SelectedBoxes    []MysteryBox `json:"selected_boxes"`
}
