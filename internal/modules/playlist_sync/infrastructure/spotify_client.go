package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	// DefaultSpotifyBaseURL is the Spotify Web API root.
	DefaultSpotifyBaseURL = "https://api.spotify.com/v1/"

	// DefaultRequestsPerSecond bounds outgoing Spotify API calls.
	DefaultRequestsPerSecond = 5
)

// Compile-time check that SpotifyClient implements MusicService.
var _ ports.MusicService = (*SpotifyClient)(nil)

// SpotifyConfig holds configuration for the Spotify client.
type SpotifyConfig struct {
	// BaseURL overrides the API root. It must end with a slash.
	BaseURL string
	// RequestsPerSecond limits outgoing calls. Zero uses DefaultRequestsPerSecond,
	// a negative value disables limiting.
	RequestsPerSecond float64
	// HTTPClient is the underlying client; the bearer transport wraps it.
	HTTPClient *http.Client
}

// SpotifyClient implements MusicService on the Spotify Web API.
// No credential is kept: each call authorizes with the one it is given.
type SpotifyClient struct {
	baseURL    string
	limiter    *rate.Limiter
	httpClient *http.Client
}

// NewSpotifyClient creates a new SpotifyClient.
func NewSpotifyClient(cfg SpotifyConfig) *SpotifyClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultSpotifyBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	rps := cfg.RequestsPerSecond
	if rps == 0 {
		rps = DefaultRequestsPerSecond
	}
	limit := rate.Limit(rps)
	if rps < 0 {
		limit = rate.Inf
	}

	return &SpotifyClient{
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(limit, 1),
		httpClient: cfg.HTTPClient,
	}
}

// PlaylistTracks returns one page of playlist items.
func (c *SpotifyClient) PlaylistTracks(
	ctx context.Context,
	cred domain.Credential,
	playlist domain.PlaylistRef,
	offset, limit int,
) (*ports.PlaylistPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	page, err := c.client(ctx, cred).GetPlaylistItems(
		ctx,
		spotify.ID(playlist.ID),
		spotify.Limit(limit),
		spotify.Offset(offset),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	ids := make([]domain.TrackID, 0, len(page.Items))
	for _, item := range page.Items {
		// Episodes and local files have no track ID.
		var id domain.TrackID
		if item.Track.Track != nil {
			id = domain.TrackID(item.Track.Track.ID)
		}
		ids = append(ids, id)
	}

	return &ports.PlaylistPage{
		TrackIDs: ids,
		Total:    int(page.Total),
	}, nil
}

// ReorderTracks moves a range of items within the playlist.
func (c *SpotifyClient) ReorderTracks(
	ctx context.Context,
	cred domain.Credential,
	playlist domain.PlaylistRef,
	rangeStart, rangeLength, insertBefore int,
) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := c.client(ctx, cred).ReorderPlaylistTracks(
		ctx,
		spotify.ID(playlist.ID),
		spotify.PlaylistReorderOptions{
			RangeStart:   spotify.Numeric(rangeStart),
			RangeLength:  spotify.Numeric(rangeLength),
			InsertBefore: spotify.Numeric(insertBefore),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to reorder playlist tracks: %w", err)
	}
	return nil
}

type insertTracksRequest struct {
	URIs     []string `json:"uris"`
	Position int      `json:"position"`
}

type spotifyErrorResponse struct {
	Error spotify.Error `json:"error"`
}

// InsertTracks adds tracks at the given position.
// spotify.Client.AddTracksToPlaylist only appends, so the request is sent directly
// to keep the insert a single call.
func (c *SpotifyClient) InsertTracks(
	ctx context.Context,
	cred domain.Credential,
	playlist domain.PlaylistRef,
	position int,
	ids ...domain.TrackID,
) error {
	if len(ids) == 0 {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	uris := make([]string, len(ids))
	for i, id := range ids {
		uris[i] = id.URI()
	}
	body, err := json.Marshal(insertTracksRequest{URIs: uris, Position: position})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := c.baseURL + "playlists/" + playlist.ID + "/tracks"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.authorizedHTTPClient(ctx, cred).Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr spotifyErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("failed to add tracks to playlist: %w", &apiErr.Error)
		}
		return fmt.Errorf("failed to add tracks to playlist: spotify API error: status %d", resp.StatusCode)
	}

	return nil
}

func (c *SpotifyClient) client(ctx context.Context, cred domain.Credential) *spotify.Client {
	return spotify.New(c.authorizedHTTPClient(ctx, cred), spotify.WithBaseURL(c.baseURL))
}

func (c *SpotifyClient) authorizedHTTPClient(ctx context.Context, cred domain.Credential) *http.Client {
	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(toOAuthToken(cred)))
}

func toOAuthToken(cred domain.Credential) *oauth2.Token {
	return &oauth2.Token{
		AccessToken: cred.AccessToken,
		TokenType:   cred.TokenType,
		Expiry:      cred.Expiry,
	}
}
