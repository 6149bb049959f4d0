package gateway

import "fmt"

// RemoteError is a non-success response from the remote catalog. Body carries
// the response text when it could be read; a failed body read leaves it empty
// rather than producing a second error.
type RemoteError struct {
	Status int
	Body   string
	URL    string
}

func (e *RemoteError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("remote catalog %s: status %d: %s", e.URL, e.Status, e.Body)
	}
	return fmt.Sprintf("remote catalog %s: status %d", e.URL, e.Status)
}
