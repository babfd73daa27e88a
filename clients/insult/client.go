package insult

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"insultbot/clients"
	"insultbot/core"
)

const (
	DefaultBaseURL = "https://insult.mattbas.org"
	DefaultTimeout = 10 * time.Second

	insultPath = "/api/insult"
)

// InsultClient implements the clients.InsultClient interface against the insult.mattbas.org API
type InsultClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewInsultClient creates an insult API client.
// A zero timeout falls back to DefaultTimeout so requests are always bounded.
func NewInsultClient(baseURL string, timeout time.Duration) clients.InsultClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &InsultClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BuildInsultURL returns the API URL for the given target with the name query-escaped
func (c *InsultClient) BuildInsultURL(who string) string {
	query := url.Values{}
	query.Set("who", who)
	return c.baseURL + insultPath + "?" + query.Encode()
}

// Generate fetches an insult for who. The returned text is trimmed of surrounding whitespace.
func (c *InsultClient) Generate(ctx context.Context, who string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BuildInsultURL(who), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create insult request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrRemoteAPITransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: status %d", core.ErrRemoteAPINonSuccess, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %w", core.ErrRemoteAPITransport, err)
	}

	return strings.TrimSpace(string(body)), nil
}
