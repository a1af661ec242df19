package apphttp

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader is attached to each submission so the backend can tell
// duplicate submissions apart.
const RequestIDHeader = "X-Request-ID"

// RequestIDProvider yields a fresh request id on every call.
type RequestIDProvider struct{}

func (RequestIDProvider) Headers(ctx context.Context) (map[string]string, error) {
	return map[string]string{RequestIDHeader: uuid.NewString()}, nil
}
