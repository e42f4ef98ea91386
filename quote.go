package hunter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// QuoteProvider is the external collaborator delivering live quotes. A batch
// lookup is best-effort: unresolvable symbols are simply absent from the
// result and per-symbol failures never fail the batch. An error is returned
// only when the provider could not be used at all.
type QuoteProvider interface {
	Quotes(ctx context.Context, symbols []string) ([]QuotePatch, error)
}

// jwget performs an HTTP GET request with optional headers and unmarshals
// the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, headers map[string]string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &httpStatusError{code: resp.StatusCode, addr: addr, status: resp.Status}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

type httpStatusError struct {
	code   int
	addr   string
	status string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("cannot http GET %v: %v", e.addr, e.status)
}

// throttled reports whether the status means the current credential is
// exhausted or rejected, and another key should be tried.
func (e *httpStatusError) throttled() bool {
	return e.code == http.StatusUnauthorized ||
		e.code == http.StatusForbidden ||
		e.code == http.StatusTooManyRequests
}

// FormatVolume renders a trade volume as the dashboard magnitude string,
// e.g. 22000 lots as "22.0K".
func FormatVolume(units float64) string {
	if units >= 1000 {
		return fmt.Sprintf("%.1fK", units/1000)
	}
	return fmt.Sprintf("%.0f", units)
}
