package app

import (
	"fmt"
	"math"

	"github.com/soumajit03/StackUp-PlaylistManager/internal/domain"
)

// StatusFilter selects which videos of a playlist are visible. It is either
// FilterAll or one of the status labels.
type StatusFilter string

const FilterAll StatusFilter = "all"

// ParseStatusFilter validates a raw filter value.
func ParseStatusFilter(s string) (StatusFilter, error) {
	if StatusFilter(s) == FilterAll {
		return FilterAll, nil
	}
	label, err := domain.ParseStatusLabel(s)
	if err != nil {
		return "", fmt.Errorf("%w: unknown filter %q", domain.ErrInvalidInput, s)
	}
	return StatusFilter(label), nil
}

// StatusCounts holds per-label video counts for a playlist. A video with
// several labels contributes to each matching bucket, so All is not the sum
// of the other four.
type StatusCounts struct {
	All       int `json:"all"`
	Unwatched int `json:"unwatched"`
	Watched   int `json:"watched"`
	Practice  int `json:"practice"`
	Saved     int `json:"saved"`
}

// CountByStatus computes the per-label counts for the playlist.
func CountByStatus(p *domain.Playlist) StatusCounts {
	c := StatusCounts{All: len(p.Videos)}
	for i := range p.Videos {
		st := p.Videos[i].Status
		if st.Contains(domain.StatusUnwatched) {
			c.Unwatched++
		}
		if st.Contains(domain.StatusWatched) {
			c.Watched++
		}
		if st.Contains(domain.StatusPractice) {
			c.Practice++
		}
		if st.Contains(domain.StatusSaved) {
			c.Saved++
		}
	}
	return c
}

// FilterVideos returns the subset of videos visible under the filter,
// preserving playlist order.
func FilterVideos(p *domain.Playlist, filter StatusFilter) []domain.Video {
	if filter == FilterAll {
		out := make([]domain.Video, len(p.Videos))
		copy(out, p.Videos)
		return out
	}
	out := []domain.Video{}
	for i := range p.Videos {
		if p.Videos[i].Status.Contains(domain.StatusLabel(filter)) {
			out = append(out, p.Videos[i])
		}
	}
	return out
}

// PageVideos returns the 1-based page of the given size from videos, plus the
// total page count. A page past the end yields an empty slice.
func PageVideos(videos []domain.Video, page, size int) ([]domain.Video, int, error) {
	if page < 1 || size < 1 {
		return nil, 0, fmt.Errorf("%w: page and page size must be positive", domain.ErrInvalidInput)
	}
	total := (len(videos) + size - 1) / size
	start := (page - 1) * size
	if start >= len(videos) {
		return []domain.Video{}, total, nil
	}
	end := start + size
	if end > len(videos) {
		end = len(videos)
	}
	return videos[start:end], total, nil
}

// ProgressPercent is the watched share of the playlist, rounded to the
// nearest integer percent. Empty playlists report 0.
func ProgressPercent(p *domain.Playlist) int {
	if len(p.Videos) == 0 {
		return 0
	}
	watched := 0
	for i := range p.Videos {
		if p.Videos[i].Status.Contains(domain.StatusWatched) {
			watched++
		}
	}
	return int(math.Round(100 * float64(watched) / float64(len(p.Videos))))
}

// JumpTarget names a video by its 1-based position in unfiltered playlist
// order and the page that contains it under the given page size.
type JumpTarget struct {
	Position int `json:"position"`
	Page     int `json:"page"`
}

// JumpToPosition resolves "jump to video N" against the unfiltered playlist.
func JumpToPosition(p *domain.Playlist, position, pageSize int) (JumpTarget, error) {
	if pageSize < 1 {
		return JumpTarget{}, fmt.Errorf("%w: page size must be positive", domain.ErrInvalidInput)
	}
	if position < 1 || position > len(p.Videos) {
		return JumpTarget{}, fmt.Errorf("%w: position %d out of range 1..%d", domain.ErrInvalidInput, position, len(p.Videos))
	}
	return JumpTarget{
		Position: position,
		Page:     (position-1)/pageSize + 1,
	}, nil
}

// ContinueFrom targets the video after the highest-positioned watched one, or
// position 1 when nothing is watched yet. The second result is true when the
// last video is already watched, meaning the playlist is complete and there
// is nothing to continue to.
func ContinueFrom(p *domain.Playlist, pageSize int) (JumpTarget, bool) {
	if len(p.Videos) == 0 {
		return JumpTarget{Position: 1, Page: 1}, false
	}
	last := 0
	for i := range p.Videos {
		if p.Videos[i].Status.Contains(domain.StatusWatched) {
			last = i + 1
		}
	}
	if last == len(p.Videos) && last > 0 {
		return JumpTarget{}, true
	}
	target, err := JumpToPosition(p, last+1, pageSize)
	if err != nil {
		return JumpTarget{}, false
	}
	return target, false
}
