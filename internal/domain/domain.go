package domain

import "time"

// Video is a single playlist entry imported from YouTube. Everything except
// Status and Notes is a snapshot of upstream metadata taken at import time.
type Video struct {
	ID           string    `json:"id" bson:"id"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Thumbnail    string    `json:"thumbnail" bson:"thumbnail"`
	ChannelTitle string    `json:"channelTitle" bson:"channelTitle"`
	PublishedAt  string    `json:"publishedAt" bson:"publishedAt"`
	Duration     string    `json:"duration" bson:"duration"`
	Status       StatusSet `json:"status" bson:"status"`
	Notes        string    `json:"notes" bson:"notes"`
}

// Playlist is one user's tracked copy of a YouTube playlist. Identity is the
// (UserID, PlaylistID) pair; Videos keep the original playlist order.
type Playlist struct {
	UserID       string    `json:"userId" bson:"userId"`
	PlaylistID   string    `json:"playlistId" bson:"playlistId"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Thumbnail    string    `json:"thumbnail" bson:"thumbnail"`
	ChannelTitle string    `json:"channelTitle" bson:"channelTitle"`
	VideoCount   int       `json:"videoCount" bson:"videoCount"`
	Videos       []Video   `json:"videos" bson:"videos"`
	CreatedAt    time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// FindVideo returns a pointer into Videos for the entry with the given id.
func (p *Playlist) FindVideo(videoID string) (*Video, error) {
	for i := range p.Videos {
		if p.Videos[i].ID == videoID {
			return &p.Videos[i], nil
		}
	}
	return nil, ErrVideoNotFound
}

// MergeStatuses copies status sets and notes from prev onto p's videos,
// matching by video id. Videos new in p keep their imported defaults. This is
// the opt-in guard against a re-import silently wiping a user's labels.
func (p *Playlist) MergeStatuses(prev *Playlist) {
	if prev == nil {
		return
	}
	byID := make(map[string]*Video, len(prev.Videos))
	for i := range prev.Videos {
		byID[prev.Videos[i].ID] = &prev.Videos[i]
	}
	for i := range p.Videos {
		old, ok := byID[p.Videos[i].ID]
		if !ok {
			continue
		}
		p.Videos[i].Status = old.Status.Clone()
		if old.Notes != "" {
			p.Videos[i].Notes = old.Notes
		}
	}
}
