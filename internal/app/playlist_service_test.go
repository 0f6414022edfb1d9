package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumajit03/StackUp-PlaylistManager/internal/domain"
)

// -- Mock source -------------------------------------------------------------

type mockSource struct {
	info     *domain.Playlist
	infoErr  error
	videos   []domain.Video
	videoErr error
}

func (m *mockSource) GetPlaylistInfo(_ context.Context, _ string) (*domain.Playlist, error) {
	if m.infoErr != nil {
		return nil, m.infoErr
	}
	p := *m.info
	return &p, nil
}

func (m *mockSource) GetPlaylistVideos(_ context.Context, _ string) ([]domain.Video, error) {
	if m.videoErr != nil {
		return nil, m.videoErr
	}
	out := make([]domain.Video, len(m.videos))
	copy(out, m.videos)
	return out, nil
}

// -- Mock store --------------------------------------------------------------

type mockStore struct {
	playlists     map[string]*domain.Playlist
	statusUpdates int
}

func storeKey(userID, playlistID string) string { return userID + "/" + playlistID }

func newMockStore(playlists ...*domain.Playlist) *mockStore {
	s := &mockStore{playlists: map[string]*domain.Playlist{}}
	for _, p := range playlists {
		s.playlists[storeKey(p.UserID, p.PlaylistID)] = p
	}
	return s
}

func (m *mockStore) Upsert(_ context.Context, p *domain.Playlist) (*domain.Playlist, error) {
	cp := *p
	m.playlists[storeKey(p.UserID, p.PlaylistID)] = &cp
	return &cp, nil
}

func (m *mockStore) Get(_ context.Context, userID, playlistID string) (*domain.Playlist, error) {
	p, ok := m.playlists[storeKey(userID, playlistID)]
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	cp := *p
	cp.Videos = make([]domain.Video, len(p.Videos))
	copy(cp.Videos, p.Videos)
	return &cp, nil
}

func (m *mockStore) ListByUser(_ context.Context, userID string) ([]domain.Playlist, error) {
	out := []domain.Playlist{}
	for _, p := range m.playlists {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockStore) UpdateVideoStatus(_ context.Context, userID, playlistID, videoID string, status domain.StatusSet) error {
	p, ok := m.playlists[storeKey(userID, playlistID)]
	if !ok {
		return domain.ErrPlaylistNotFound
	}
	video, err := p.FindVideo(videoID)
	if err != nil {
		return err
	}
	video.Status = status
	m.statusUpdates++
	return nil
}

func (m *mockStore) Delete(_ context.Context, userID, playlistID string) error {
	key := storeKey(userID, playlistID)
	if _, ok := m.playlists[key]; !ok {
		return domain.ErrPlaylistNotFound
	}
	delete(m.playlists, key)
	return nil
}

// -- Helpers -----------------------------------------------------------------

func threeVideos() []domain.Video {
	return []domain.Video{
		{ID: "v1", Title: "Intro", Status: domain.Unwatched()},
		{ID: "v2", Title: "Basics", Status: domain.Unwatched()},
		{ID: "v3", Title: "Advanced", Status: domain.Unwatched()},
	}
}

func storedPlaylist() *domain.Playlist {
	return &domain.Playlist{
		UserID:     "user-1",
		PlaylistID: "PL123",
		Title:      "Yoga Course",
		Videos:     threeVideos(),
		VideoCount: 3,
	}
}

// -- Import ------------------------------------------------------------------

func TestImportPlaylist_DefaultsAllToUnwatched(t *testing.T) {
	source := &mockSource{
		info:   &domain.Playlist{PlaylistID: "PL123", Title: "Yoga Course", ChannelTitle: "Yoga Channel"},
		videos: threeVideos(),
	}
	svc := NewService(source, newMockStore())

	playlist, err := svc.ImportPlaylist(context.Background(), "PL123")

	require.NoError(t, err)
	assert.Equal(t, "Yoga Course", playlist.Title)
	assert.Equal(t, 3, playlist.VideoCount)
	for _, v := range playlist.Videos {
		assert.Equal(t, domain.Unwatched(), v.Status)
	}

	counts := CountByStatus(playlist)
	assert.Equal(t, StatusCounts{All: 3, Unwatched: 3}, counts)
}

func TestImportPlaylist_AcceptsFullURL(t *testing.T) {
	source := &mockSource{
		info:   &domain.Playlist{PlaylistID: "PL123", Title: "Yoga Course"},
		videos: threeVideos(),
	}
	svc := NewService(source, newMockStore())

	playlist, err := svc.ImportPlaylist(context.Background(), "https://www.youtube.com/playlist?list=PL123")

	require.NoError(t, err)
	assert.Equal(t, "PL123", playlist.PlaylistID)
}

func TestImportPlaylist_InvalidInput(t *testing.T) {
	svc := NewService(&mockSource{}, newMockStore())

	_, err := svc.ImportPlaylist(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ImportPlaylist(context.Background(), "https://www.youtube.com/watch?v=abc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportPlaylist_NotFoundUpstream(t *testing.T) {
	source := &mockSource{infoErr: domain.ErrPlaylistNotFound}
	svc := NewService(source, newMockStore())

	_, err := svc.ImportPlaylist(context.Background(), "PLmissing")

	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
}

func TestImportPlaylist_EmptyPlaylistIsNotAnError(t *testing.T) {
	source := &mockSource{
		info:   &domain.Playlist{PlaylistID: "PLempty", Title: "Empty"},
		videos: []domain.Video{},
	}
	svc := NewService(source, newMockStore())

	playlist, err := svc.ImportPlaylist(context.Background(), "PLempty")

	require.NoError(t, err)
	assert.Empty(t, playlist.Videos)
	assert.Equal(t, 0, playlist.VideoCount)
}

func TestImportPlaylist_FallsBackToFirstVideoMetadata(t *testing.T) {
	source := &mockSource{
		info: &domain.Playlist{PlaylistID: "PL123"},
		videos: []domain.Video{
			{ID: "v1", Title: "First", Thumbnail: "thumb1", ChannelTitle: "Channel A", Status: domain.Unwatched()},
		},
	}
	svc := NewService(source, newMockStore())

	playlist, err := svc.ImportPlaylist(context.Background(), "PL123")

	require.NoError(t, err)
	assert.Equal(t, "First", playlist.Title)
	assert.Equal(t, "thumb1", playlist.Thumbnail)
	assert.Equal(t, "Channel A", playlist.ChannelTitle)
}

func TestImportPlaylist_UpstreamError(t *testing.T) {
	source := &mockSource{
		info:     &domain.Playlist{PlaylistID: "PL123"},
		videoErr: fmt.Errorf("%w: quota exceeded", domain.ErrUpstream),
	}
	svc := NewService(source, newMockStore())

	_, err := svc.ImportPlaylist(context.Background(), "PL123")

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

// -- Save / list / delete ----------------------------------------------------

func TestSaveOrReplacePlaylist_Upserts(t *testing.T) {
	store := newMockStore()
	svc := NewService(&mockSource{}, store)

	stored, err := svc.SaveOrReplacePlaylist(context.Background(), storedPlaylist(), false)

	require.NoError(t, err)
	assert.Equal(t, "PL123", stored.PlaylistID)
	assert.Len(t, store.playlists, 1)
}

func TestSaveOrReplacePlaylist_Validation(t *testing.T) {
	svc := NewService(&mockSource{}, newMockStore())

	_, err := svc.SaveOrReplacePlaylist(context.Background(), &domain.Playlist{PlaylistID: "PL123"}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.SaveOrReplacePlaylist(context.Background(), &domain.Playlist{UserID: "u", PlaylistID: "p"}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaveOrReplacePlaylist_OverwriteDiscardsStatuses(t *testing.T) {
	existing := storedPlaylist()
	existing.Videos[0].Status = domain.StatusSet{domain.StatusWatched}
	store := newMockStore(existing)
	svc := NewService(&mockSource{}, store)

	stored, err := svc.SaveOrReplacePlaylist(context.Background(), storedPlaylist(), false)

	require.NoError(t, err)
	assert.Equal(t, domain.Unwatched(), stored.Videos[0].Status,
		"plain replace loses previously set labels")
}

func TestSaveOrReplacePlaylist_PreserveStatusMerges(t *testing.T) {
	existing := storedPlaylist()
	existing.Videos[0].Status = domain.StatusSet{domain.StatusWatched}
	existing.Videos[1].Status = domain.StatusSet{domain.StatusPractice, domain.StatusSaved}
	store := newMockStore(existing)
	svc := NewService(&mockSource{}, store)

	stored, err := svc.SaveOrReplacePlaylist(context.Background(), storedPlaylist(), true)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusSet{domain.StatusWatched}, stored.Videos[0].Status)
	assert.Equal(t, domain.StatusSet{domain.StatusPractice, domain.StatusSaved}, stored.Videos[1].Status)
	assert.Equal(t, domain.Unwatched(), stored.Videos[2].Status)
}

func TestSaveOrReplacePlaylist_PreserveStatusFirstSave(t *testing.T) {
	svc := NewService(&mockSource{}, newMockStore())

	stored, err := svc.SaveOrReplacePlaylist(context.Background(), storedPlaylist(), true)

	require.NoError(t, err)
	assert.Len(t, stored.Videos, 3)
}

func TestListPlaylists(t *testing.T) {
	store := newMockStore(storedPlaylist())
	svc := NewService(&mockSource{}, store)

	playlists, err := svc.ListPlaylists(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, playlists, 1)

	playlists, err = svc.ListPlaylists(context.Background(), "someone-else")
	require.NoError(t, err)
	assert.Empty(t, playlists)

	_, err = svc.ListPlaylists(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeletePlaylist(t *testing.T) {
	store := newMockStore(storedPlaylist())
	svc := NewService(&mockSource{}, store)

	require.NoError(t, svc.DeletePlaylist(context.Background(), "user-1", "PL123"))
	assert.Empty(t, store.playlists)

	err := svc.DeletePlaylist(context.Background(), "user-1", "PL123")
	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
}

// -- Status reconciliation ---------------------------------------------------

func TestSetVideoStatus_PracticeReplacesUnwatched(t *testing.T) {
	store := newMockStore(storedPlaylist())
	svc := NewService(&mockSource{}, store)

	video, err := svc.SetVideoStatus(context.Background(), "user-1", "PL123", "v2", domain.StatusPractice, domain.ActionAdd)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusSet{domain.StatusPractice}, video.Status)

	stored, err := store.Get(context.Background(), "user-1", "PL123")
	require.NoError(t, err)
	counts := CountByStatus(stored)
	assert.Equal(t, 2, counts.Unwatched)
	assert.Equal(t, 1, counts.Practice)
}

func TestSetVideoStatus_AddThenRemoveSequence(t *testing.T) {
	existing := storedPlaylist()
	existing.Videos[1].Status = domain.StatusSet{domain.StatusPractice}
	store := newMockStore(existing)
	svc := NewService(&mockSource{}, store)

	video, err := svc.SetVideoStatus(context.Background(), "user-1", "PL123", "v2", domain.StatusWatched, domain.ActionAdd)
	require.NoError(t, err)
	assert.ElementsMatch(t, domain.StatusSet{domain.StatusPractice, domain.StatusWatched}, video.Status)

	video, err = svc.SetVideoStatus(context.Background(), "user-1", "PL123", "v2", domain.StatusPractice, domain.ActionRemove)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSet{domain.StatusWatched}, video.Status)
}

func TestSetVideoStatus_OnlyTargetVideoMutated(t *testing.T) {
	store := newMockStore(storedPlaylist())
	svc := NewService(&mockSource{}, store)

	_, err := svc.SetVideoStatus(context.Background(), "user-1", "PL123", "v1", domain.StatusWatched, domain.ActionAdd)
	require.NoError(t, err)

	stored, err := store.Get(context.Background(), "user-1", "PL123")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSet{domain.StatusWatched}, stored.Videos[0].Status)
	assert.Equal(t, domain.Unwatched(), stored.Videos[1].Status)
	assert.Equal(t, domain.Unwatched(), stored.Videos[2].Status)
	assert.Equal(t, 1, store.statusUpdates)
}

func TestSetVideoStatus_VideoNotFound(t *testing.T) {
	store := newMockStore(storedPlaylist())
	svc := NewService(&mockSource{}, store)

	_, err := svc.SetVideoStatus(context.Background(), "user-1", "PL123", "nope", domain.StatusWatched, domain.ActionAdd)

	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
}

func TestSetVideoStatus_PlaylistNotFound(t *testing.T) {
	svc := NewService(&mockSource{}, newMockStore())

	_, err := svc.SetVideoStatus(context.Background(), "user-1", "PL123", "v1", domain.StatusWatched, domain.ActionAdd)

	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
}

func TestSetVideoStatus_Validation(t *testing.T) {
	svc := NewService(&mockSource{}, newMockStore())

	_, err := svc.SetVideoStatus(context.Background(), "", "PL123", "v1", domain.StatusWatched, domain.ActionAdd)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.SetVideoStatus(context.Background(), "user-1", "PL123", "", domain.StatusWatched, domain.ActionAdd)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// -- Playlist id normalization ------------------------------------------------

func TestNormalizePlaylistID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "PL123", want: "PL123"},
		{in: "  PL123  ", want: "PL123"},
		{in: "https://www.youtube.com/playlist?list=PLabc", want: "PLabc"},
		{in: "https://www.youtube.com/watch?v=xyz&list=PLdef", want: "PLdef"},
		{in: "https://www.youtube.com/watch?v=xyz", wantErr: true},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
	}

	for _, tc := range tests {
		got, err := NormalizePlaylistID(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}
