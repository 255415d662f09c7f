package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrDatasourceNotFound = errors.New("datasource not found")
	ErrMalformedFeed      = errors.New("malformed feed document")
	ErrFeedNotCached      = errors.New("feed document not cached")
	ErrMailNotConfigured  = errors.New("mail sender not configured")
	ErrAlertNotFound      = errors.New("alert not found")
)

// HTTPStatusError is returned by the feed client when the feed server answers with a non 2xx status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("[%d] unexpected status fetching %s", e.StatusCode, e.URL)
}

func NewHTTPStatusError(url string, statusCode int) error {
	return &HTTPStatusError{
		URL:        url,
		StatusCode: statusCode,
	}
}
