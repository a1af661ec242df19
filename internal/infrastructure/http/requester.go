package httpinfra

import (
	"context"
	"net/http"

	httpdomain "qform.io/cli/internal/core/domain/http"
	httpports "qform.io/cli/internal/core/ports/http"
)

// Requester turns a RequestContext into a single round trip. It does not
// retry, read the body or inspect the status.
type Requester struct {
	doer httpports.Doer
}

func NewRequester(doer httpports.Doer) *Requester {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Requester{doer: doer}
}

// Do sends req and returns the raw response. Errors from the client are
// returned untouched.
func (r *Requester) Do(ctx context.Context, req httpdomain.RequestContext) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, req.Body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	return r.doer.Do(httpReq)
}
