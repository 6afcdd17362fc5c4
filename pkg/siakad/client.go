package siakad

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Client talks to the university admissions API (SIA). All durable state lives
// behind that API; this client is the only way the gateway reads or writes it.
type Client struct {
	HTTPClient   *http.Client
	BaseURL      string
	ServiceToken string
}

func (c Client) doJSON(ctx context.Context, method, path string, reqBody any, respBody any) (int, error) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 20 * time.Second}
	}
	if c.BaseURL == "" || c.ServiceToken == "" {
		return 0, fmt.Errorf("missing admissions base url or service token")
	}

	var buf bytes.Buffer
	if reqBody != nil {
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return 0, err
		}
	}

	u := strings.TrimSuffix(c.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.ServiceToken)

	return c.send(req, path, respBody)
}

// doMultipart posts one file plus form fields. The upstream expects the file
// under the "file" part.
func (c Client) doMultipart(ctx context.Context, path string, fields map[string]string, filename string, file io.Reader, respBody any) (int, error) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 20 * time.Second}
	}
	if c.BaseURL == "" || c.ServiceToken == "" {
		return 0, fmt.Errorf("missing admissions base url or service token")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return 0, err
		}
	}
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return 0, err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}

	u := strings.TrimSuffix(c.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.ServiceToken)

	return c.send(req, path, respBody)
}

func (c Client) send(req *http.Request, path string, respBody any) (int, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, NetworkError{Op: req.Method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return resp.StatusCode, NetworkError{Op: req.Method + " " + path, Err: readErr}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, c.mapError(req.Method, path, resp.StatusCode, b)
	}

	if respBody != nil && len(b) > 0 {
		if err := json.Unmarshal(b, respBody); err != nil {
			// Include body for easier debugging (unexpected shape, partial responses, etc).
			return resp.StatusCode, fmt.Errorf("decode admissions response failed: %w body=%s", err, string(b))
		}
	}

	return resp.StatusCode, nil
}

func (c Client) mapError(method, path string, status int, body []byte) error {
	switch {
	case status == http.StatusNotFound:
		return NotFoundError{Resource: resourceFromPath(path)}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		var env struct {
			Error ValidationError `json:"error"`
		}
		if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
			return env.Error
		}
		return ValidationError{Code: "UPSTREAM_VALIDATION", Message: strings.TrimSpace(string(body))}
	case status >= 500:
		return NetworkError{
			Op:  method + " " + path,
			Err: fmt.Errorf("admissions api error: status=%d body=%s", status, string(body)),
		}
	default:
		// Surface the upstream body for everything else so callers can see
		// auth problems, missing scopes, etc.
		return fmt.Errorf("admissions api error: status=%d body=%s", status, string(body))
	}
}

func resourceFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 {
		return "resource"
	}
	return parts[len(parts)-1]
}
