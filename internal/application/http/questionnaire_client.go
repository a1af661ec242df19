package apphttp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"

	httpdomain "qform.io/cli/internal/core/domain/http"
	"qform.io/cli/internal/core/domain/questionnaire"
	httpports "qform.io/cli/internal/core/ports/http"
	httpinfra "qform.io/cli/internal/infrastructure/http"
)

// QuestionnaireClient submits questionnaires to a single endpoint.
type QuestionnaireClient struct {
	endpoint     httpdomain.Endpoint
	requester    *httpinfra.Requester
	authProvider httpports.AuthHeaderProvider
	logger       hclog.Logger
}

func NewQuestionnaireClient(endpoint httpdomain.Endpoint, doer httpports.Doer, auth httpports.AuthHeaderProvider, logger hclog.Logger) *QuestionnaireClient {
	if auth == nil {
		auth = httpports.AuthHeaderFunc(func() map[string]string { return nil })
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &QuestionnaireClient{
		endpoint:     endpoint,
		requester:    httpinfra.NewRequester(doer),
		authProvider: auth,
		logger:       logger,
	}
}

// Submit POSTs q as multipart/form-data and returns the response as is.
// The status code is not checked and the body is left for the caller to
// read and close. Every call sends a new request.
func (c *QuestionnaireClient) Submit(ctx context.Context, q questionnaire.Questionnaire) (*http.Response, error) {
	provided, err := c.authProvider.Headers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth headers: %w", err)
	}

	if c.endpoint.UserAgent != "" {
		provided = httpinfra.MergeHeaders(map[string]string{"User-Agent": c.endpoint.UserAgent}, provided)
	}

	parts := q.Parts()
	body, err := httpinfra.EncodeMultipart(parts)
	if err != nil {
		return nil, err
	}
	headers, dropped := httpinfra.BuildHeaders(map[string]string{"Content-Type": body.ContentType}, provided)
	if len(dropped) > 0 {
		c.logger.Debug("ignoring reserved headers from auth provider", "headers", dropped)
	}

	c.logger.Debug("submitting questionnaire", "url", c.endpoint.URL, "parts", len(parts), "bytes", body.Len())

	resp, err := c.requester.Do(ctx, httpdomain.RequestContext{
		Method:  http.MethodPost,
		URL:     c.endpoint.URL,
		Headers: headers,
		Body:    body.Reader(),
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
