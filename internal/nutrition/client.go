// Package nutrition talks to the upstream nutrition lookup API that maps a
// free-text dish name to zero or more nutrition records.
package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// ErrUnavailable is returned when the upstream cannot be reached or answers
// with a non-success status
var ErrUnavailable = errors.New("nutrition lookup unavailable")

// Client looks up nutrition records for a dish name.
// An unrecognized name yields an empty slice and a nil error.
type Client interface {
	Lookup(ctx context.Context, query string) ([]models.NutritionRecord, error)
}

// NinjasClient queries the api-ninjas /v1/nutrition endpoint
type NinjasClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewNinjasClient creates a client for baseURL authenticated with apiKey.
// A zero timeout leaves the request unbounded.
func NewNinjasClient(baseURL, apiKey string, timeout time.Duration) *NinjasClient {
	return &NinjasClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Lookup performs a single request; there is no retry.
func (c *NinjasClient) Lookup(ctx context.Context, query string) ([]models.NutritionRecord, error) {
	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	params := reqURL.Query()
	params.Set("query", query)
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("query", query).Warn("Nutrition API not reachable")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrUnavailable, err)
	}

	log.WithFields(logrus.Fields{
		"query":       query,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Nutrition API responded")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var records []models.NutritionRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", ErrUnavailable, err)
	}
	return records, nil
}
