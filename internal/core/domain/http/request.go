package httpdomain

import "io"

// RequestContext is a fully built outbound request before it is handed to
// the HTTP client.
type RequestContext struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    io.Reader
}
