package models

import "time"

// GlobalSetting is a singleton key-value row used for shared UI
// configuration such as the box display color and login-page texts.
//
// Creating and updating are the same operation: writes are upserts keyed
// on Name.
type GlobalSetting struct {
	// Name is the unique key of the setting (e.g. "box_color").
	Name string `json:"setting_name"`

	// Value is the stored string value.
	Value string `json:"setting_value"`

	// UpdatedAt is the timestamp of the last write.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the GlobalSetting model.
func (s GlobalSetting) TableName() string {
	return "global_settings"
}
