package api

import (
	"errors"
	"fmt"
)

// ErrNoBaseURL is returned when neither a tool argument nor the
// environment provides a base URL. It is detected before any network
// call is made.
var ErrNoBaseURL = errors.New("no base_url provided: set SHARE_API_BASE_URL or pass base_url")

// FetchError describes a failed API request: a transport failure, a
// non-2xx status, or an unparseable response body. Status is zero when
// no HTTP response was received.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: http status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DownloadError describes a failed attachment download: the request
// itself, the streamed body, or the local file write.
type DownloadError struct {
	AttachmentID int
	Filename     string
	Status       int
	Err          error
}

func (e *DownloadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("download %s (attachment %d): http status %d", e.Filename, e.AttachmentID, e.Status)
	}
	return fmt.Sprintf("download %s (attachment %d): %v", e.Filename, e.AttachmentID, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
