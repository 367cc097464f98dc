package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// UpstreamError is returned for every non-2xx response of a remote json api.
// When the body carries a grpc-gateway style error payload ({"code": .., "message": ..})
// HasCode is set and Code/Message are filled from it.
type UpstreamError struct {
	URL        string
	StatusCode int
	HasCode    bool
	Code       int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.HasCode {
		return fmt.Sprintf("upstream %s returned status %d: code = %d, message = %s",
			e.URL, e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("upstream %s returned status %d", e.URL, e.StatusCode)
}

// IsUpstreamCodeError reports whether err is (or wraps) an UpstreamError with an error code payload
func IsUpstreamCodeError(err error) bool {
	var upstreamErr *UpstreamError

	return errors.As(err, &upstreamErr) && upstreamErr.HasCode
}

type errorPayload struct {
	Code    *int   `json:"code"`
	Message string `json:"message"`
}

func HTTPGet[TReturn any](ctx context.Context, client *http.Client, requestURL string) (TReturn, error) {
	var result TReturn

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return result, fmt.Errorf("failed to create request for %s: %w", requestURL, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return result, fmt.Errorf("failed to send request to %s: %w", requestURL, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, fmt.Errorf("failed to read response from %s: %w", requestURL, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		upstreamErr := &UpstreamError{
			URL:        requestURL,
			StatusCode: resp.StatusCode,
		}

		var payload errorPayload
		if err := json.Unmarshal(body, &payload); err == nil && payload.Code != nil {
			upstreamErr.HasCode = true
			upstreamErr.Code = *payload.Code
			upstreamErr.Message = payload.Message
		}

		return result, upstreamErr
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("failed to decode response from %s: %w", requestURL, err)
	}

	return result, nil
}
