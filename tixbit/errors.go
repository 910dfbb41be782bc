package tixbit

import "fmt"

const maxErrBody = 300

// APIError is returned when the upstream responds with a non-success status.
// Transport failures (DNS, timeout, aborted context) are returned as wrapped
// plain errors instead and carry no status.
type APIError struct {
	Status int
	URL    string
	Body   string // truncated excerpt for diagnostics
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tixbit api error %d %s: %s", e.Status, e.URL, e.Body)
}

func newAPIError(status int, url string, body []byte) *APIError {
	excerpt := string(body)
	if len(excerpt) > maxErrBody {
		excerpt = excerpt[:maxErrBody]
	}
	return &APIError{Status: status, URL: url, Body: excerpt}
}
