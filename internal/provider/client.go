package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/models"
)

// Client talks to the family-data provider over HTTP/JSON. Transient
// failures (connection errors, 5xx) are retried with backoff before being
// surfaced as typed errors.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	logger  *logrus.Logger
}

// NewClient creates a provider client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = timeout
	rc.Logger = nil

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
		logger:  logger,
	}
}

// errorBody is the structured error payload the provider attaches to
// non-success responses.
type errorBody struct {
	Detail string `json:"detail"`
}

// GetFamilyDetail fetches the full record for a single family.
func (c *Client) GetFamilyDetail(ctx context.Context, familyID string) (*models.FamilyDetail, error) {
	endpoint := fmt.Sprintf("%s/api/families/%s", c.baseURL, url.PathEscape(familyID))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for family %s: %w", familyID, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{FamilyID: familyID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail := readErrorDetail(resp.Body)
		if resp.StatusCode == http.StatusNotFound {
			return nil, &NotFoundError{FamilyID: familyID, Detail: detail}
		}
		return nil, &ServerError{FamilyID: familyID, StatusCode: resp.StatusCode, Detail: detail}
	}

	var family models.FamilyDetail
	if err := json.NewDecoder(resp.Body).Decode(&family); err != nil {
		return nil, fmt.Errorf("failed to decode family %s: %w", familyID, err)
	}

	c.logger.WithFields(logrus.Fields{
		"family_id": family.ID,
		"children":  len(family.Children),
	}).Debug("fetched family detail")

	return &family, nil
}

// readErrorDetail extracts the provider's {"detail": "..."} payload from an
// error response body. A missing or malformed body yields an empty string.
func readErrorDetail(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return eb.Detail
}
