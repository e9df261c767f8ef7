package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/google/uuid"
)

// APIKeyHeader carries the static credential on every request.
const APIKeyHeader = "X-API-KEY"

// RequestIDHeader correlates client and server log lines.
const RequestIDHeader = "X-Request-Id"

// Catalog is the read-only view of the remote project catalog.
type Catalog interface {
	// ListProjects returns every project. A successful empty catalog
	// yields an empty, non-nil slice.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// GetProject returns the project with the given id.
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
}

// ClientConfig is the injected configuration for an HTTP catalog client.
// It is read once at startup; the client never consults the environment.
type ClientConfig struct {
	BaseURL string
	APIKey  string
}

// httpClient implements Catalog over the catalog's JSON HTTP API.
type httpClient struct {
	cfg      ClientConfig
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Catalog talking to cfg.BaseURL.
// There is no overall request timeout: a stalled response blocks until the
// caller's context is cancelled.
func NewHTTPClient(cfg ClientConfig, observer Observer) Catalog {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

type listResponse struct {
	Projects []domain.Project `json:"projects"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *httpClient) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var body listResponse
	if err := c.get(ctx, "list", "/project", &body); err != nil {
		return nil, err
	}
	if body.Projects == nil {
		return []domain.Project{}, nil
	}
	return body.Projects, nil
}

func (c *httpClient) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	var p domain.Project
	path := "/project/" + strconv.FormatInt(id, 10)
	if err := c.get(ctx, "get", path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// get issues one GET and decodes a 2xx body into out. Exactly one observer
// event is emitted per call, including calls refused for a missing key.
func (c *httpClient) get(ctx context.Context, op, path string, out any) error {
	start := time.Now()
	event := CallEvent{Op: op, Path: path}

	status, err := c.doRequest(ctx, path, &event, out)

	event.StatusCode = status
	event.Latency = time.Since(start)
	event.Success = err == nil
	event.ErrorCode = errorCode(err)
	event.Err = err
	c.observer.OnCallComplete(event)
	return err
}

func (c *httpClient) doRequest(ctx context.Context, path string, event *CallEvent, out any) (int, error) {
	if c.cfg.APIKey == "" {
		return 0, ErrMissingAPIKey
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	event.RequestID = uuid.NewString()
	req.Header.Set(APIKeyHeader, c.cfg.APIKey)
	req.Header.Set(RequestIDHeader, event.RequestID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: reading body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp, data),
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return resp.StatusCode, nil
}

// errorMessage prefers the body's "message" field and falls back to the
// response's reason phrase.
func errorMessage(resp *http.Response, body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return statusText(resp)
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
