// Package dietclient resolves diets from the standalone diets service over HTTP.
package dietclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Client implements services.DietLookup against GET {baseURL}/diets/{name}
type Client struct {
	baseURL string
	client  *http.Client
}

var _ services.DietLookup = (*Client)(nil)

// New creates a diets service client. baseURL is e.g. http://diet-service:5002
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetDietByName maps 200 to found, 404 to not found, and everything else,
// including transport failures, to services.ErrDietServiceUnavailable.
// Names that cannot be stored as a diet are not found without a request.
func (c *Client) GetDietByName(ctx context.Context, name string) (models.Diet, bool, error) {
	if name == "" || strings.Contains(name, "/") {
		return models.Diet{}, false, nil
	}

	reqURL := c.baseURL + "/diets/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.Diet{}, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("diet", name).Warn("Diets service not reachable")
		return models.Diet{}, false, fmt.Errorf("%w: %v", services.ErrDietServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Diet{}, false, fmt.Errorf("%w: failed to read response body: %v", services.ErrDietServiceUnavailable, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var diet models.Diet
		if err := json.Unmarshal(body, &diet); err != nil {
			return models.Diet{}, false, fmt.Errorf("%w: failed to parse diet: %v", services.ErrDietServiceUnavailable, err)
		}
		return diet, true, nil
	case http.StatusNotFound:
		return models.Diet{}, false, nil
	default:
		log.WithFields(logrus.Fields{
			"diet":   name,
			"status": resp.StatusCode,
		}).Warn("Diets service returned unexpected status")
		return models.Diet{}, false, fmt.Errorf("%w: status %d", services.ErrDietServiceUnavailable, resp.StatusCode)
	}
}
