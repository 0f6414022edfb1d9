package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/soumajit03/StackUp-PlaylistManager/internal/domain"
	"github.com/soumajit03/StackUp-PlaylistManager/internal/ports"
)

// Service implements ports.PlaylistService on top of a video source and a
// playlist store.
type Service struct {
	source ports.VideoSource
	store  ports.PlaylistStore
}

// NewService creates the playlist service.
func NewService(source ports.VideoSource, store ports.PlaylistStore) *Service {
	return &Service{source: source, store: store}
}

func (s *Service) ImportPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	id, err := NormalizePlaylistID(playlistID)
	if err != nil {
		return nil, err
	}

	log.Printf("[import] fetching playlist %s", id)

	playlist, err := s.source.GetPlaylistInfo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlist metadata: %w", err)
	}

	videos, err := s.source.GetPlaylistVideos(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlist videos: %w", err)
	}

	playlist.Videos = videos
	playlist.VideoCount = len(videos)

	// Playlist metadata comes from the dedicated playlists call; fall back
	// to the first video only for fields the upstream left blank.
	if len(videos) > 0 {
		if playlist.Title == "" {
			playlist.Title = videos[0].Title
		}
		if playlist.Thumbnail == "" {
			playlist.Thumbnail = videos[0].Thumbnail
		}
		if playlist.ChannelTitle == "" {
			playlist.ChannelTitle = videos[0].ChannelTitle
		}
	}

	log.Printf("[import] playlist %s: %d videos", id, len(videos))

	return playlist, nil
}

func (s *Service) SaveOrReplacePlaylist(ctx context.Context, p *domain.Playlist, preserveStatus bool) (*domain.Playlist, error) {
	if p == nil || p.UserID == "" || p.PlaylistID == "" {
		return nil, fmt.Errorf("%w: userId and playlistId are required", domain.ErrInvalidInput)
	}
	if p.Videos == nil {
		return nil, fmt.Errorf("%w: videos are required", domain.ErrInvalidInput)
	}

	for i := range p.Videos {
		if p.Videos[i].Status == nil {
			p.Videos[i].Status = domain.Unwatched()
		}
	}

	// A plain re-import replaces the whole video list and with it every
	// label the user has set. preserveStatus merges the stored labels back
	// on by video id before the write.
	if preserveStatus {
		prev, err := s.store.Get(ctx, p.UserID, p.PlaylistID)
		if err == nil {
			p.MergeStatuses(prev)
		} else if !isNotFound(err) {
			return nil, err
		}
	}

	stored, err := s.store.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to save playlist: %w", err)
	}

	log.Printf("[save] playlist %s/%s: %d videos (preserveStatus=%t)",
		p.UserID, p.PlaylistID, len(p.Videos), preserveStatus)

	return stored, nil
}

func (s *Service) ListPlaylists(ctx context.Context, userID string) ([]domain.Playlist, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrInvalidInput)
	}
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) SetVideoStatus(ctx context.Context, userID, playlistID, videoID string, label domain.StatusLabel, action domain.StatusAction) (*domain.Video, error) {
	if userID == "" || playlistID == "" || videoID == "" {
		return nil, fmt.Errorf("%w: userId, playlistId and videoId are required", domain.ErrInvalidInput)
	}

	playlist, err := s.store.Get(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}

	video, err := playlist.FindVideo(videoID)
	if err != nil {
		return nil, err
	}

	video.Status = video.Status.Apply(label, action)

	// Single-document atomic write conditioned on the video id, so two
	// concurrent mutations on the same playlist cannot clobber each other's
	// unrelated videos.
	if err := s.store.UpdateVideoStatus(ctx, userID, playlistID, videoID, video.Status); err != nil {
		return nil, err
	}

	log.Printf("[status] %s/%s video %s: %s %s -> %v",
		userID, playlistID, videoID, action, label, video.Status)

	return video, nil
}

func (s *Service) DeletePlaylist(ctx context.Context, userID, playlistID string) error {
	if userID == "" || playlistID == "" {
		return fmt.Errorf("%w: userId and playlistId are required", domain.ErrInvalidInput)
	}
	return s.store.Delete(ctx, userID, playlistID)
}

// NormalizePlaylistID accepts a bare playlist id or a full YouTube URL and
// returns the playlist id, rejecting anything without a usable id.
func NormalizePlaylistID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: playlistId is required", domain.ErrInvalidInput)
	}
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%w: invalid playlist URL", domain.ErrInvalidInput)
		}
		id := u.Query().Get("list")
		if id == "" {
			return "", fmt.Errorf("%w: playlist URL has no list parameter", domain.ErrInvalidInput)
		}
		return id, nil
	}
	return raw, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrPlaylistNotFound) || errors.Is(err, domain.ErrVideoNotFound)
}
