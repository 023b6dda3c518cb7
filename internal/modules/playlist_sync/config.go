package playlist_sync

import "time"

// Config holds the playlist sync module configuration.
type Config struct {
	PlaylistOwner string `env:"SPOTIFY_USER,notEmpty"`
	PlaylistID    string `env:"SPOTIFY_PLAYLIST,notEmpty"`

	ClientID     string `env:"SPOTIFY_CLIENT_ID,notEmpty"`
	ClientSecret string `env:"SPOTIFY_CLIENT_SECRET,notEmpty"`
	RefreshToken string `env:"SPOTIFY_REFRESH_TOKEN,notEmpty"`

	RefreshInterval   time.Duration `env:"SPOTIFY_REFRESH_INTERVAL"    envDefault:"30m"`
	RequestsPerSecond float64       `env:"SPOTIFY_REQUESTS_PER_SECOND" envDefault:"5"`

	// Endpoint overrides, empty for the public Spotify services.
	APIBaseURL string `env:"SPOTIFY_API_URL"`
	TokenURL   string `env:"SPOTIFY_TOKEN_URL"`
}
