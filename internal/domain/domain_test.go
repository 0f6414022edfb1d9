package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindVideo(t *testing.T) {
	p := Playlist{
		Videos: []Video{
			{ID: "v1"},
			{ID: "v2"},
		},
	}

	video, err := p.FindVideo("v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", video.ID)

	// Returned pointer aliases the playlist entry.
	video.Notes = "great tutorial"
	assert.Equal(t, "great tutorial", p.Videos[1].Notes)

	_, err = p.FindVideo("v3")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestMergeStatuses(t *testing.T) {
	prev := &Playlist{
		Videos: []Video{
			{ID: "v1", Status: StatusSet{StatusWatched}, Notes: "done"},
			{ID: "v2", Status: StatusSet{StatusPractice, StatusSaved}},
			{ID: "gone", Status: StatusSet{StatusWatched}},
		},
	}

	// Re-import: v1 and v2 still exist, "gone" dropped, "new" added.
	fresh := Playlist{
		Videos: []Video{
			{ID: "v1", Status: Unwatched()},
			{ID: "v2", Status: Unwatched()},
			{ID: "new", Status: Unwatched()},
		},
	}

	fresh.MergeStatuses(prev)

	assert.Equal(t, StatusSet{StatusWatched}, fresh.Videos[0].Status)
	assert.Equal(t, "done", fresh.Videos[0].Notes)
	assert.Equal(t, StatusSet{StatusPractice, StatusSaved}, fresh.Videos[1].Status)
	assert.Equal(t, Unwatched(), fresh.Videos[2].Status, "new videos keep the import default")
}

func TestMergeStatuses_NilPrevious(t *testing.T) {
	p := Playlist{Videos: []Video{{ID: "v1", Status: Unwatched()}}}

	p.MergeStatuses(nil)

	assert.Equal(t, Unwatched(), p.Videos[0].Status)
}
