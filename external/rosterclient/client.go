// Package rosterclient is a typed HTTP client for the roster API. Read-side
// consumers (the public site, prerender jobs) use it instead of talking to
// the endpoints directly.
package rosterclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/team-oshsharohi/roster-service/internal/platform/logging"
)

const (
	defaultBaseURL = "http://localhost:3001"
	defaultTimeout = 3 * time.Second
)

// ErrNotFound reports a 404 from the API, e.g. an unknown sub-team id.
var ErrNotFound = crerr.New("roster resource not found")

// ErrAPIFailure reports any other non-success response.
var ErrAPIFailure = crerr.New("roster api failure")

type TeamMember struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Subteam      string `json:"subteam"`
	Color        string `json:"color"`
	ImagePath    string `json:"image_path"`
	DisplayOrder int    `json:"display_order"`
}

type GroupedMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Img         string `json:"img"`
}

type SubTeam struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Icon         string   `json:"icon"`
	Description  string   `json:"description"`
	Goals        []string `json:"goals"`
	Achievements []string `json:"achievements"`
}

type SubTeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

type SubTeamDetail struct {
	SubTeam
	Members []SubTeamMember `json:"members"`
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (c *Client) TeamMembers(ctx context.Context) ([]TeamMember, error) {
	var out []TeamMember
	if err := c.getEnveloped(ctx, "/api/team-members", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TeamMembersBySubteam(ctx context.Context, subteamName string) ([]TeamMember, error) {
	subteamName = strings.TrimSpace(subteamName)
	if subteamName == "" {
		return nil, fmt.Errorf("subteam name is required")
	}

	var out []TeamMember
	if err := c.getEnveloped(ctx, "/api/team-members/"+url.PathEscape(subteamName), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GroupedTeamMembers(ctx context.Context) (map[string][]GroupedMember, error) {
	var out map[string][]GroupedMember
	if err := c.getEnveloped(ctx, "/api/team-members-grouped", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubTeams(ctx context.Context) ([]SubTeam, error) {
	var out []SubTeam
	if err := c.getEnveloped(ctx, "/api/sub-teams", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubTeamWithMembers(ctx context.Context, id string) (SubTeamDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SubTeamDetail{}, fmt.Errorf("sub-team id is required")
	}

	var out SubTeamDetail
	if err := c.getEnveloped(ctx, "/api/sub-teams/"+url.PathEscape(id), &out); err != nil {
		return SubTeamDetail{}, err
	}
	return out, nil
}

// Health hits the probe endpoint, which responds outside the envelope.
func (c *Client) Health(ctx context.Context) (Health, error) {
	raw, status, err := c.get(ctx, "/api/health")
	if err != nil {
		return Health{}, err
	}
	if status != http.StatusOK {
		return Health{}, fmt.Errorf("%w: health returned status %d", ErrAPIFailure, status)
	}

	var out Health
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return Health{}, fmt.Errorf("decode health payload: %w", err)
	}
	return out, nil
}

// SiteBundle carries everything the public site needs for first render.
type SiteBundle struct {
	Grouped  map[string][]GroupedMember
	SubTeams []SubTeam
}

// FetchSiteBundle loads the grouped roster and the sub-team list in parallel.
func (c *Client) FetchSiteBundle(ctx context.Context) (SiteBundle, error) {
	var bundle SiteBundle

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		grouped, err := c.GroupedTeamMembers(ctx)
		if err != nil {
			return fmt.Errorf("fetch grouped members: %w", err)
		}
		bundle.Grouped = grouped
		return nil
	})
	p.Go(func(ctx context.Context) error {
		subTeams, err := c.SubTeams(ctx)
		if err != nil {
			return fmt.Errorf("fetch sub-teams: %w", err)
		}
		bundle.SubTeams = subTeams
		return nil
	})

	if err := p.Wait(); err != nil {
		return SiteBundle{}, err
	}
	return bundle, nil
}

// ResolveAssetURL turns a stored image path into an absolute URL. Paths that
// are already absolute URLs pass through untouched.
func (c *Client) ResolveAssetURL(imagePath string) string {
	imagePath = strings.TrimSpace(imagePath)
	if imagePath == "" {
		return ""
	}
	if strings.HasPrefix(imagePath, "http://") || strings.HasPrefix(imagePath, "https://") {
		return imagePath
	}
	if !strings.HasPrefix(imagePath, "/") {
		imagePath = "/" + imagePath
	}
	return c.baseURL + imagePath
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Error   string          `json:"error"`
}

func (c *Client) getEnveloped(ctx context.Context, path string, target any) error {
	raw, status, err := c.get(ctx, path)
	if err != nil {
		return err
	}

	var envelope apiEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode response envelope for %s: %w", path, err)
	}

	if !envelope.Success {
		message := envelope.Error
		if message == "" {
			message = fmt.Sprintf("status %d", status)
		}
		if status == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, message)
		}
		return fmt.Errorf("%w: %s", ErrAPIFailure, message)
	}

	if err := sonic.Unmarshal(envelope.Data, target); err != nil {
		return fmt.Errorf("decode response data for %s: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: request %s: %v", ErrAPIFailure, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body for %s: %w", path, err)
	}

	return raw, resp.StatusCode, nil
}
