package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is the resty-backed transport for the Pin Payments API. It is
// bound at construction to one resolved endpoint and secret key: JSON in,
// decoded JSON out, basic auth with the secret key as username and an empty
// password, versioned path prefix.
//
// The client never retries; transport faults go straight back to the caller.
type Client struct {
	r    *resty.Client
	base string
}

// New creates a client for the given endpoint host and secret key.
func New(endpoint, secretKey string) *Client {
	r := resty.New().
		SetTimeout(30 * time.Second).
		SetBasicAuth(secretKey, "").
		SetHeader("Content-Type", "application/json")

	return &Client{
		r:    r,
		base: "https://" + endpoint + "/1",
	}
}

// WithTimeout sets a custom timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.r.SetTimeout(d)
	return c
}

// Request performs one round trip and decodes the JSON reply. A body that
// does not decode as a JSON object is a transport fault, not a reply.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}) (map[string]interface{}, error) {
	req := c.r.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, c.base+path)
	if err != nil {
		return nil, fmt.Errorf("pin api %s %s: %w", method, path, err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, fmt.Errorf("pin api %s %s: decode reply: %w", method, path, err)
	}
	return decoded, nil
}
