package emrhttp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/emr_dto"
	"mortuary-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client wraps the EMR REST transport: basic auth on every call and a bounded
// retry on reads, since the EMR drops connections under load.
type Client struct {
	HTTPClient *http.Client
	Username   string
	Password   string
	Log        *zap.Logger
}

func NewClient(username, password string, logger *zap.Logger) *Client {
	return &Client{
		HTTPClient: &http.Client{},
		Username:   username,
		Password:   password,
		Log:        logger,
	}
}

// Get fetches url and decodes the JSON body into dest. Transport errors and
// 5xx responses are retried up to constvars.EmrFetchRetryCount times.
func (c *Client) Get(ctx context.Context, url, resource string, dest interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var lastErr error
	for attempt := 0; attempt <= constvars.EmrFetchRetryCount; attempt++ {
		if attempt > 0 {
			c.Log.Warn("emrhttp.Get retrying",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("resource", resource),
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			select {
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			case <-ctx.Done():
				return exceptions.ErrSendHTTPRequest(ctx.Err())
			}
		}

		req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
		if err != nil {
			return exceptions.ErrCreateHTTPRequest(err)
		}
		req.SetBasicAuth(c.Username, c.Password)
		req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= constvars.StatusInternalServerError {
			resp.Body.Close()
			lastErr = fmt.Errorf("emr responded with status %d", resp.StatusCode)
			continue
		}

		err = c.decodeResponse(resp, resource, dest)
		resp.Body.Close()
		return err
	}
	return exceptions.ErrSendHTTPRequest(lastErr)
}

// Post sends body as JSON and decodes the response into dest. dest may be nil
// when the caller does not need the created resource back.
func (c *Client) Post(ctx context.Context, url, resource string, body, dest interface{}) error {
	requestJSON, err := json.Marshal(body)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.SetBasicAuth(c.Username, c.Password)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return exceptions.ErrEmrCreateResource(c.readOutcome(resp), resource)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}
	return nil
}

// Delete voids or retires the resource at url.
func (c *Client) Delete(ctx context.Context, url, resource string) error {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, url, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.SetBasicAuth(c.Username, c.Password)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		return exceptions.ErrEmrDeleteResource(c.readOutcome(resp), resource)
	}
	return nil
}

func (c *Client) decodeResponse(resp *http.Response, resource string, dest interface{}) error {
	if resp.StatusCode == constvars.StatusNotFound {
		return exceptions.ErrEmrGetResource(fmt.Errorf("%s not found", resource), resource)
	}
	if resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrEmrGetResource(c.readOutcome(resp), resource)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}
	return nil
}

func (c *Client) readOutcome(resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("emr responded with status %d", resp.StatusCode)
	}

	var outcome emr_dto.OperationOutcome
	if err := json.Unmarshal(bodyBytes, &outcome); err == nil && outcome.Error.Message != "" {
		return fmt.Errorf("emr responded with status %d: %s", resp.StatusCode, outcome.Error.Message)
	}
	return fmt.Errorf("emr responded with status %d", resp.StatusCode)
}
