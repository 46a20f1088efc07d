package models

import "time"

// MysteryBox represents a selectable mystery-box record.
//
// Ownership is mutually exclusive: SelectedBy is nil while the box is free
// and holds the owning user's ID once the box has been selected. A selected
// box cannot be reassigned until an administrator resets the selection state.
type MysteryBox struct {
	// ID is the internal unique identifier of the box.
	ID int64 `json:"id"`

	// Name is the display label of the box.
	Name string `json:"name"`

	// Description is an optional descriptive text shown to players.
	Description string `json:"description"`

	// ImageURL is an optional picture shown on the selection page.
	ImageURL string `json:"image_url,omitempty"`

	// SelectedBy is the ID of the user currently owning the box,
	// or nil when the box is unselected.
	SelectedBy *int64 `json:"selected_by"`

	// CreatedAt is the timestamp when the box record was created.
	CreatedAt time.Time `json:"created_at"`
}

// Selected reports whether the box is currently owned by a user.
func (b MysteryBox) Selected() bool {
	return b.SelectedBy != nil
}

// TableName returns the name of the database table
// associated with the MysteryBox model.
func (b MysteryBox) TableName() string {
	return "mystery_boxes"
}
