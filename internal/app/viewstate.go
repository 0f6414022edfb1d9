package app

import "github.com/soumajit03/StackUp-PlaylistManager/internal/domain"

// DefaultPageSize matches the original client's videosPerPage.
const DefaultPageSize = 8

// ViewState is an immutable snapshot of the client-facing browse state:
// which playlist is selected, the active status filter and the current page.
// Transitions return a new ViewState instead of mutating in place, so the
// derived computations in views.go always run over a consistent snapshot.
type ViewState struct {
	Playlist *domain.Playlist
	Filter   StatusFilter
	Page     int
	PageSize int
}

// NewViewState starts on page 1 of the unfiltered view.
func NewViewState(pageSize int) ViewState {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return ViewState{Filter: FilterAll, Page: 1, PageSize: pageSize}
}

// Select switches to another playlist and resets the page to 1.
func (v ViewState) Select(p *domain.Playlist) ViewState {
	v.Playlist = p
	v.Page = 1
	return v
}

// SetFilter switches the active filter and resets the page to 1.
func (v ViewState) SetFilter(f StatusFilter) ViewState {
	v.Filter = f
	v.Page = 1
	return v
}

// SetPage moves to the given page, clamped to the valid range.
func (v ViewState) SetPage(page int) ViewState {
	total := v.TotalPages()
	if page < 1 {
		page = 1
	}
	if total > 0 && page > total {
		page = total
	}
	v.Page = page
	return v
}

func (v ViewState) NextPage() ViewState { return v.SetPage(v.Page + 1) }
func (v ViewState) PrevPage() ViewState { return v.SetPage(v.Page - 1) }

// Jump moves to the page containing the video at the given 1-based position
// in unfiltered order, clearing any active filter so the target is visible.
func (v ViewState) Jump(position int) (ViewState, error) {
	if v.Playlist == nil {
		return v, domain.ErrPlaylistNotFound
	}
	target, err := JumpToPosition(v.Playlist, position, v.PageSize)
	if err != nil {
		return v, err
	}
	v.Filter = FilterAll
	v.Page = target.Page
	return v, nil
}

// Continue jumps to the next unwatched position after the furthest watched
// video. The second result is true when the playlist is already complete, in
// which case the state is unchanged.
func (v ViewState) Continue() (ViewState, bool) {
	if v.Playlist == nil {
		return v, false
	}
	target, done := ContinueFrom(v.Playlist, v.PageSize)
	if done {
		return v, true
	}
	v.Filter = FilterAll
	v.Page = target.Page
	return v, false
}

// VisibleVideos is the current page of the filtered video list.
func (v ViewState) VisibleVideos() []domain.Video {
	if v.Playlist == nil {
		return nil
	}
	page, _, err := PageVideos(FilterVideos(v.Playlist, v.Filter), v.Page, v.PageSize)
	if err != nil {
		return nil
	}
	return page
}

// TotalPages is the page count of the filtered video list.
func (v ViewState) TotalPages() int {
	if v.Playlist == nil {
		return 0
	}
	filtered := FilterVideos(v.Playlist, v.Filter)
	return (len(filtered) + v.PageSize - 1) / v.PageSize
}

// Counts returns the status counts of the selected playlist.
func (v ViewState) Counts() StatusCounts {
	if v.Playlist == nil {
		return StatusCounts{}
	}
	return CountByStatus(v.Playlist)
}
