package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// NoUUIDOnWireError reports that the request is missing a webview UUID.
	NoUUIDOnWireError = New("webview UUID is required")
	// NoURIOnWireError reports that the request is missing a document URI.
	NoURIOnWireError = New("document URI is required")
)

// IsBadRequest reports whether the error is a bad request from the caller.
func IsBadRequest(e error) bool {
	return stderr.Is(e, NoUUIDOnWireError) || stderr.Is(e, NoURIOnWireError)
}
