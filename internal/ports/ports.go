package ports

import (
	"context"

	"github.com/soumajit03/StackUp-PlaylistManager/internal/domain"
)

// VideoSource is the driven port for the external video-metadata service.
// Implementations return fully normalized domain values: thumbnail and channel
// fallbacks resolved, durations formatted, status defaulted to unwatched.
type VideoSource interface {
	// GetPlaylistInfo returns playlist-level metadata, or
	// domain.ErrPlaylistNotFound when the id does not exist upstream. An
	// existing playlist with zero videos is not an error.
	GetPlaylistInfo(ctx context.Context, playlistID string) (*domain.Playlist, error)

	// GetPlaylistVideos returns all entries of the playlist in upstream
	// order, following pagination internally until exhausted.
	GetPlaylistVideos(ctx context.Context, playlistID string) ([]domain.Video, error)
}

// PlaylistStore is the driven port for the document store. Documents are
// keyed by the (userID, playlistID) pair.
type PlaylistStore interface {
	// Upsert stores the playlist, replacing any existing document with the
	// same key, and returns the stored document.
	Upsert(ctx context.Context, p *domain.Playlist) (*domain.Playlist, error)

	// Get returns the playlist or domain.ErrPlaylistNotFound.
	Get(ctx context.Context, userID, playlistID string) (*domain.Playlist, error)

	// ListByUser returns all playlists owned by the user.
	ListByUser(ctx context.Context, userID string) ([]domain.Playlist, error)

	// UpdateVideoStatus writes the new status set onto the one matching
	// video entry as a single atomic document update. Returns
	// domain.ErrPlaylistNotFound or domain.ErrVideoNotFound when the
	// filter matches nothing.
	UpdateVideoStatus(ctx context.Context, userID, playlistID, videoID string, status domain.StatusSet) error

	// Delete removes the playlist document, domain.ErrPlaylistNotFound if absent.
	Delete(ctx context.Context, userID, playlistID string) error
}

// PlaylistService is the driving port exposed to the HTTP layer.
type PlaylistService interface {
	// ImportPlaylist fetches and normalizes a playlist from the video
	// source. Accepts a bare playlist id or a full playlist URL.
	ImportPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error)

	// SaveOrReplacePlaylist upserts the playlist for its user. When
	// preserveStatus is set, status sets and notes from a previously stored
	// copy are merged onto the incoming videos by id; otherwise the stored
	// document is overwritten wholesale, discarding existing labels.
	SaveOrReplacePlaylist(ctx context.Context, p *domain.Playlist, preserveStatus bool) (*domain.Playlist, error)

	// ListPlaylists returns all playlists for the user.
	ListPlaylists(ctx context.Context, userID string) ([]domain.Playlist, error)

	// SetVideoStatus applies one add/remove label mutation to a video and
	// returns the updated video.
	SetVideoStatus(ctx context.Context, userID, playlistID, videoID string, label domain.StatusLabel, action domain.StatusAction) (*domain.Video, error)

	// DeletePlaylist removes the playlist.
	DeletePlaylist(ctx context.Context, userID, playlistID string) error
}
