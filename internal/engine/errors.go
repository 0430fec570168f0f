package engine

import "fmt"

// AuthFailedMessage is returned verbatim to the caller on HTTP 401 from the
// instance, regardless of the upstream body.
const AuthFailedMessage = "authentication failed: check that SEARXNG_USERNAME and SEARXNG_PASSWORD are set correctly"

// ValidationError reports unusable tool arguments. Raised before any I/O.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// AuthError reports a rejected basic-auth handshake with the instance.
type AuthError struct{}

func (e *AuthError) Error() string { return AuthFailedMessage }

// UpstreamError reports a failed search call. StatusCode is zero for
// transport-level failures.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Detail != "":
		return fmt.Sprintf("searxng returned status %d: %s", e.StatusCode, e.Detail)
	case e.StatusCode != 0:
		return fmt.Sprintf("searxng returned status %d", e.StatusCode)
	default:
		return "searxng request failed: " + e.Detail
	}
}

// ResolutionError reports a failed instance-directory resolution.
// Fatal at startup; never produced per call.
type ResolutionError struct {
	Err error
}

func (e *ResolutionError) Error() string { return "instance resolution failed: " + e.Err.Error() }

func (e *ResolutionError) Unwrap() error { return e.Err }
