package httpports

import (
	"context"
	"net/http"
)

// Doer performs a single HTTP round trip. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// AuthHeaderProvider returns the credential headers for a request at call time.
type AuthHeaderProvider interface {
	Headers(ctx context.Context) (map[string]string, error)
}

// AuthHeaderFunc adapts a plain function to AuthHeaderProvider.
type AuthHeaderFunc func() map[string]string

func (f AuthHeaderFunc) Headers(ctx context.Context) (map[string]string, error) {
	return f(), nil
}

// ChainHeaderProviders merges the headers of several providers. Later
// providers win on key collisions.
func ChainHeaderProviders(providers ...AuthHeaderProvider) AuthHeaderProvider {
	return chain(providers)
}

type chain []AuthHeaderProvider

func (c chain) Headers(ctx context.Context) (map[string]string, error) {
	out := map[string]string{}
	for _, p := range c {
		h, err := p.Headers(ctx)
		if err != nil {
			return nil, err
		}
		for k, v := range h {
			out[k] = v
		}
	}
	return out, nil
}

// TokenSource yields the bearer token to present. An empty token means the
// request is sent without Authorization.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
