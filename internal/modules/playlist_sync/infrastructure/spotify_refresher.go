package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
)

// Compile-time check that SpotifyRefresher implements CredentialRefresher.
var _ ports.CredentialRefresher = (*SpotifyRefresher)(nil)

// SpotifyRefresherConfig holds the application credentials and the long-lived refresh token.
type SpotifyRefresherConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	// TokenURL overrides the accounts service token endpoint.
	TokenURL string
	// HTTPClient is used for the token exchange when set.
	HTTPClient *http.Client
}

// SpotifyRefresher exchanges the refresh token for a new access token.
type SpotifyRefresher struct {
	config       *oauth2.Config
	refreshToken string
	httpClient   *http.Client
}

// NewSpotifyRefresher creates a new SpotifyRefresher.
func NewSpotifyRefresher(cfg SpotifyRefresherConfig) (*SpotifyRefresher, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("missing client ID")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("missing client secret")
	}
	if cfg.RefreshToken == "" {
		return nil, errors.New("missing refresh token")
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = spotifyauth.TokenURL
	}

	return &SpotifyRefresher{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes: []string{
				spotifyauth.ScopePlaylistReadPrivate,
				spotifyauth.ScopePlaylistReadCollaborative,
				spotifyauth.ScopePlaylistModifyPublic,
				spotifyauth.ScopePlaylistModifyPrivate,
			},
			Endpoint: oauth2.Endpoint{
				AuthURL:   spotifyauth.AuthURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		refreshToken: cfg.RefreshToken,
		httpClient:   cfg.HTTPClient,
	}, nil
}

// Refresh performs one refresh-token exchange.
func (r *SpotifyRefresher) Refresh(ctx context.Context) (domain.Credential, error) {
	if r.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, r.httpClient)
	}

	// A token holding only the refresh token is never valid, so the source
	// always performs the exchange.
	source := r.config.TokenSource(ctx, &oauth2.Token{RefreshToken: r.refreshToken})
	token, err := source.Token()
	if err != nil {
		return domain.Credential{}, fmt.Errorf("refresh token exchange: %w", err)
	}

	return domain.NewCredential(token.AccessToken, token.Type(), token.Expiry), nil
}
