package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/avast/retry-go/v4"

	"github.com/soumajit03/StackUp-PlaylistManager/internal/domain"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	maxResults     = 50

	// noChannelFound is shown when neither the owner nor the uploader
	// channel attribution is present (deleted channels, region blocks).
	noChannelFound = "No Channel Found"

	// placeholderThumbnail is used when a video exposes no thumbnails at
	// all, which happens for deleted and private playlist entries.
	placeholderThumbnail = "https://i.ytimg.com/img/no_thumbnail.jpg"
)

// Source implements ports.VideoSource against the YouTube Data API v3,
// authenticating with a server-held API key.
type Source struct {
	client   *http.Client
	apiKey   string
	baseURL  string
	maxPages int
}

// NewSource creates a YouTube source. If client is nil, http.DefaultClient is
// used. maxPages caps the pagination loop; values below 1 default to 200.
func NewSource(client *http.Client, apiKey string, maxPages int) *Source {
	if client == nil {
		client = http.DefaultClient
	}
	if maxPages < 1 {
		maxPages = 200
	}
	return &Source{
		client:   client,
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		maxPages: maxPages,
	}
}

// -- API response types (internal) ------------------------------------------

type thumbnail struct {
	URL string `json:"url"`
}

// thumbnails carries the five fixed resolutions the Data API may return.
type thumbnails struct {
	Maxres   *thumbnail `json:"maxres"`
	Standard *thumbnail `json:"standard"`
	High     *thumbnail `json:"high"`
	Medium   *thumbnail `json:"medium"`
	Default  *thumbnail `json:"default"`
}

type playlistListResponse struct {
	Items []playlistResource `json:"items"`
}

type playlistResource struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string     `json:"title"`
		Description  string     `json:"description"`
		ChannelTitle string     `json:"channelTitle"`
		Thumbnails   thumbnails `json:"thumbnails"`
	} `json:"snippet"`
	ContentDetails struct {
		ItemCount int `json:"itemCount"`
	} `json:"contentDetails"`
}

type playlistItemsResponse struct {
	Items         []playlistItemResource `json:"items"`
	NextPageToken string                 `json:"nextPageToken"`
}

type playlistItemResource struct {
	Snippet struct {
		Title                  string     `json:"title"`
		Description            string     `json:"description"`
		PublishedAt            string     `json:"publishedAt"`
		ChannelTitle           string     `json:"channelTitle"`
		VideoOwnerChannelTitle string     `json:"videoOwnerChannelTitle"`
		Thumbnails             thumbnails `json:"thumbnails"`
		ResourceID             struct {
			VideoID string `json:"videoId"`
		} `json:"resourceId"`
	} `json:"snippet"`
}

type videoListResponse struct {
	Items []videoResource `json:"items"`
}

type videoResource struct {
	ID             string `json:"id"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// -- VideoSource implementation ----------------------------------------------

func (s *Source) GetPlaylistInfo(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	endpoint := fmt.Sprintf(
		"%s/playlists?part=snippet,contentDetails&id=%s&key=%s",
		s.baseURL, url.QueryEscape(playlistID), s.apiKey,
	)

	body, err := s.doGet(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to get playlist: %w", err)
	}

	var resp playlistListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("youtube: failed to parse playlist response: %w", err)
	}

	// The playlists endpoint answers an unknown id with an empty items
	// array, not an error. This is what separates "no such playlist" from
	// a playlist that merely has zero videos.
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: playlist %s", domain.ErrPlaylistNotFound, playlistID)
	}

	item := resp.Items[0]
	return &domain.Playlist{
		PlaylistID:   item.ID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Thumbnail:    bestThumbnail(item.Snippet.Thumbnails),
		ChannelTitle: item.Snippet.ChannelTitle,
		VideoCount:   item.ContentDetails.ItemCount,
	}, nil
}

func (s *Source) GetPlaylistVideos(ctx context.Context, playlistID string) ([]domain.Video, error) {
	videos := []domain.Video{}
	pageToken := ""

	for page := 0; ; page++ {
		if page >= s.maxPages {
			return nil, fmt.Errorf("%w: pagination did not terminate after %d pages", domain.ErrUpstream, s.maxPages)
		}

		endpoint := fmt.Sprintf(
			"%s/playlistItems?part=snippet&playlistId=%s&maxResults=%d&key=%s",
			s.baseURL, url.QueryEscape(playlistID), maxResults, s.apiKey,
		)
		if pageToken != "" {
			endpoint += "&pageToken=" + url.QueryEscape(pageToken)
		}

		body, err := s.doGet(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("youtube: failed to get playlist items: %w", err)
		}

		var resp playlistItemsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("youtube: failed to parse playlist items response: %w", err)
		}

		for _, item := range resp.Items {
			if item.Snippet.ResourceID.VideoID == "" {
				continue
			}
			videos = append(videos, domain.Video{
				ID:           item.Snippet.ResourceID.VideoID,
				Title:        item.Snippet.Title,
				Description:  item.Snippet.Description,
				Thumbnail:    bestThumbnail(item.Snippet.Thumbnails),
				ChannelTitle: channelOf(item.Snippet.VideoOwnerChannelTitle, item.Snippet.ChannelTitle),
				PublishedAt:  item.Snippet.PublishedAt,
				Duration:     "0:00",
				Status:       domain.Unwatched(),
			})
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	if err := s.fillDurations(ctx, videos); err != nil {
		return nil, err
	}

	return videos, nil
}

// fillDurations resolves video durations via the videos endpoint, which is
// the only place the Data API exposes contentDetails.duration. Ids are
// batched 50 per call. Videos the API no longer returns keep "0:00".
func (s *Source) fillDurations(ctx context.Context, videos []domain.Video) error {
	index := make(map[string][]int, len(videos))
	for i := range videos {
		index[videos[i].ID] = append(index[videos[i].ID], i)
	}

	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	for start := 0; start < len(ids); start += maxResults {
		end := start + maxResults
		if end > len(ids) {
			end = len(ids)
		}

		endpoint := fmt.Sprintf(
			"%s/videos?part=contentDetails&id=%s&key=%s",
			s.baseURL, url.QueryEscape(strings.Join(ids[start:end], ",")), s.apiKey,
		)

		body, err := s.doGet(ctx, endpoint)
		if err != nil {
			return fmt.Errorf("youtube: failed to get video durations: %w", err)
		}

		var resp videoListResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("youtube: failed to parse videos response: %w", err)
		}

		for _, item := range resp.Items {
			for _, i := range index[item.ID] {
				videos[i].Duration = FormatDuration(item.ContentDetails.Duration)
			}
		}
	}

	return nil
}

// -- HTTP helper -------------------------------------------------------------

// doGet performs the request with a single bounded retry on transport-level
// network failures. API-level errors (any non-200) are never retried.
func (s *Source) doGet(ctx context.Context, endpoint string) ([]byte, error) {
	var body []byte

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			resp, err := s.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			body, err = io.ReadAll(resp.Body)
			if err != nil {
				return err
			}

			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(apiError(resp.StatusCode, body))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// apiError surfaces the upstream error message where the API provides one.
func apiError(status int, body []byte) error {
	var resp apiErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error.Message != "" {
		if status == http.StatusNotFound {
			return fmt.Errorf("%w: %s", domain.ErrPlaylistNotFound, resp.Error.Message)
		}
		return fmt.Errorf("%w: %s (status %d)", domain.ErrUpstream, resp.Error.Message, status)
	}
	if status == http.StatusNotFound {
		return fmt.Errorf("%w: status 404", domain.ErrPlaylistNotFound)
	}
	return fmt.Errorf("%w: status %d", domain.ErrUpstream, status)
}

// -- Normalization helpers ---------------------------------------------------

// bestThumbnail walks the fixed resolution preference order and returns the
// first URL present, falling back to the placeholder.
func bestThumbnail(t thumbnails) string {
	for _, candidate := range []*thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if candidate != nil && candidate.URL != "" {
			return candidate.URL
		}
	}
	return placeholderThumbnail
}

// channelOf prefers the video-owner attribution over the uploading channel.
func channelOf(owner, uploader string) string {
	if owner != "" {
		return owner
	}
	if uploader != "" {
		return uploader
	}
	return noChannelFound
}
