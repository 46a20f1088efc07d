// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// mystery-box server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed."

	// MsgSomethingWentWrong is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgSomethingWentWrong = "Something went wrong."

	// MsgAPIRunning is returned by the liveness endpoint.
	MsgAPIRunning = "API is running"

	// MsgUserLoginSuccessful is returned on a successful user login.
	MsgUserLoginSuccessful = "Login successful!"

	// MsgAdminLoginSuccessful is returned on a successful admin login.
	MsgAdminLoginSuccessful = "Admin login successful!"

	// MsgAdminCreated is returned when a new administrator account is
	// persisted.
	MsgAdminCreated = "Admin created successfully!"

	// MsgUserCreated is returned when a new user account is persisted.
	MsgUserCreated = "User created successfully!"

	// MsgUserDeleted is returned when a user account is removed.
	MsgUserDeleted = "User deleted successfully!"

	// MsgUserCreditsUpdated is returned when a user's credit balance is set.
	MsgUserCreditsUpdated = "User credits updated successfully!"

	// MsgUserFetched is returned by the single-user lookup.
	MsgUserFetched = "User fetched successfully!"

	// MsgUsersFetched is returned by the list and search endpoints.
	MsgUsersFetched = "Users fetched successfully!"

	// MsgBoxesFetched is returned by the box listing endpoint.
	MsgBoxesFetched = "Boxes fetched successfully!"

	// MsgBoxFetched is returned by the single-box lookup.
	MsgBoxFetched = "Box fetched successfully!"

	// MsgBoxesSubmitted is returned when a box selection commits.
	MsgBoxesSubmitted = "Selected boxes submitted successfully!"

	// MsgBoxesUnselected is returned when every selection mark is cleared.
	MsgBoxesUnselected = "Boxes set to unselected successfully!"

	// MsgBoxColorUpdated is returned when the shared box color is stored.
	MsgBoxColorUpdated = "Box color updated successfully!"

	// MsgBoxColorFetched is returned by the box-color read endpoint.
	MsgBoxColorFetched = "Box color fetched successfully!"

	// MsgLoginPageTextFetched is returned by the login-page text read
	// endpoint.
	MsgLoginPageTextFetched = "Login page text fetched successfully!"

	// MsgLoginPageTextUpdated is returned when login-page text is stored.
	MsgLoginPageTextUpdated = "Login page text updated successfully!"
)
