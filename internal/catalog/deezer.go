// Deezer API implementation of [Service]
//
// Deezer API response types based on https://developers.deezer.com/api
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
	"tunebox/internal/models"
	"tunebox/internal/shared"
)

const deezerBaseURL = "https://api.deezer.com"

// DeezerArtist represents a Deezer artist.
type DeezerArtist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DeezerAlbum represents a Deezer album.
type DeezerAlbum struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	CoverMedium string `json:"cover_medium"`
}

// DeezerTrack represents a Deezer track.
type DeezerTrack struct {
	ID      int64        `json:"id"`
	Title   string       `json:"title"`
	Preview string       `json:"preview"` // 30-second audio clip
	Artist  DeezerArtist `json:"artist"`
	Album   DeezerAlbum  `json:"album"`

	Error *DeezerError `json:"error,omitempty"`
}

// DeezerError is the error object Deezer embeds in 200 responses.
type DeezerError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// DeezerChartPage represents one page of the chart tracks endpoint.
type DeezerChartPage struct {
	Data  []DeezerTrack `json:"data"`
	Total int           `json:"total"`
	Next  string        `json:"next,omitempty"`

	Error *DeezerError `json:"error,omitempty"`
}

// DeezerService implements the [Service] interface against the Deezer public API.
//
// The chart endpoint needs no credentials. Page fetches are sequential, rate
// limited, and bounded by maxFetch; see [DeezerService.ListCatalog].
type DeezerService struct {
	baseURL    string
	pageSize   int
	maxFetch   int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// DeezerOpts contains configuration options for creating a DeezerService.
type DeezerOpts struct {
	BaseURL    string
	PageSize   int
	MaxFetch   int
	RateLimit  float64
	HTTPClient *http.Client
}

// NewDeezerService creates a new Deezer catalog service.
func NewDeezerService(opts DeezerOpts) *DeezerService {
	if opts.BaseURL == "" {
		opts.BaseURL = deezerBaseURL
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 50
	}
	if opts.MaxFetch <= 0 {
		opts.MaxFetch = 200
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &DeezerService{
		baseURL:    opts.BaseURL,
		pageSize:   opts.PageSize,
		maxFetch:   opts.MaxFetch,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
	}
}

func (s *DeezerService) Name() string {
	return "Deezer"
}

// doRequest performs a rate-limited GET against the Deezer API and decodes the response.
func (s *DeezerService) doRequest(ctx context.Context, endpoint string, result any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	apiURL := s.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("deezer API error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ChartTracks retrieves one page of the global chart with pagination parameters.
func (s *DeezerService) ChartTracks(ctx context.Context, index, limit int) (*DeezerChartPage, error) {
	endpoint := fmt.Sprintf("/chart/0/tracks?index=%d&limit=%d", index, limit)

	var page DeezerChartPage
	if err := s.doRequest(ctx, endpoint, &page); err != nil {
		return nil, err
	}

	if page.Error != nil {
		return nil, fmt.Errorf("deezer API error: %s (%d)", page.Error.Message, page.Error.Code)
	}

	return &page, nil
}

// Track retrieves a single track by ID.
func (s *DeezerService) Track(ctx context.Context, trackID int64) (*DeezerTrack, error) {
	endpoint := fmt.Sprintf("/track/%d", trackID)

	var track DeezerTrack
	if err := s.doRequest(ctx, endpoint, &track); err != nil {
		return nil, err
	}

	if track.Error != nil {
		return nil, fmt.Errorf("deezer API error: %s (%d)", track.Error.Message, track.Error.Code)
	}

	return &track, nil
}

// Service interface implementation

// ListCatalog pages through the chart in fixed-size pages, accumulating
// normalized songs until the provider returns an empty page or the fetch cap
// is reached.
//
// The cap check runs after a whole page is accumulated, so the result can
// exceed maxFetch by up to one page: the aggregation stops after the page that
// crosses the cap rather than truncating mid-page. Any provider failure aborts
// the whole aggregation; there is no partial result and no retry.
func (s *DeezerService) ListCatalog(ctx context.Context) ([]models.Song, error) {
	var songs []models.Song
	index := 0
	fetched := 0

	for fetched < s.maxFetch {
		page, err := s.ChartTracks(ctx, index, s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrFetchFailed, err)
		}

		if len(page.Data) == 0 {
			break
		}

		for _, track := range page.Data {
			songs = append(songs, normalize(track))
		}

		fetched += len(page.Data)
		index += s.pageSize
	}

	return songs, nil
}

// GetSong retrieves one song by identifier, bypassing any client-side cache.
func (s *DeezerService) GetSong(ctx context.Context, id int64) (*models.Song, error) {
	track, err := s.Track(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrFetchFailed, err)
	}

	song := normalize(*track)
	return &song, nil
}

// normalize projects the provider's track record onto the stable Song shape.
func normalize(track DeezerTrack) models.Song {
	return models.Song{
		ID:      track.ID,
		Title:   track.Title,
		Artist:  track.Artist.Name,
		Image:   track.Album.CoverMedium,
		Preview: track.Preview,
	}
}
