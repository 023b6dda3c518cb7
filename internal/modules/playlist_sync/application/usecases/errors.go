package usecases

import "errors"

// Domain errors for the playlist sync module.
var (
	// ErrNoTrackReference is returned when a message contains no recognizable track link.
	// It is not a failure: such messages are ignored.
	ErrNoTrackReference = errors.New("no track reference found")

	// ErrCredentialRefreshFailed is returned when the refresh token exchange fails.
	// The previously stored credential stays in effect.
	ErrCredentialRefreshFailed = errors.New("failed to refresh credential")

	// ErrEmptyCredential is returned when the refresher yields no access token.
	ErrEmptyCredential = errors.New("refresher returned an empty credential")

	// ErrMutationFailed is returned when the reorder or insert call is rejected.
	ErrMutationFailed = errors.New("failed to update playlist")
)
