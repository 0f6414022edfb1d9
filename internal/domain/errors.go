package domain

import "errors"

// Sentinel errors for the failure classes the API surfaces. Callers wrap them
// with fmt.Errorf("...: %w", err) and the HTTP layer maps them to status codes.
var (
	// ErrInvalidInput covers missing or malformed identifying fields
	// (userId, playlistId, videoId, label, action) and bad playlist URLs.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPlaylistNotFound is returned for reads, updates and deletes against
	// a playlist that does not exist, and for imports of unknown playlist ids.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrVideoNotFound is returned when a status mutation names a video id
	// absent from the playlist.
	ErrVideoNotFound = errors.New("video not found")

	// ErrUpstream wraps YouTube Data API failures; the message carries the
	// upstream error text where available.
	ErrUpstream = errors.New("upstream error")

	// ErrStore wraps persistence failures.
	ErrStore = errors.New("store error")
)
