package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// apiClient is a minimal client for the REST API under test.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient() *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get fetches an API path and decodes the JSON envelope. The status code is
// returned alongside, since error envelopes also carry a body.
func (c *apiClient) get(path string, params url.Values) (int, map[string]any, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	printRequest(u)

	resp, err := c.httpClient.Get(u)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("decoding response: %w", err)
	}
	return resp.StatusCode, data, nil
}

func envelopeError(data map[string]any) string {
	if msg, ok := data["error"].(string); ok {
		return msg
	}
	return "unknown error"
}
