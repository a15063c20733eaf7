package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fhofer/invoice-assistant/internal/common"
)

// Client submits posting documents to the bookkeeping endpoint. Success is
// signalled exclusively by HTTP 201 Created; anything else is a recoverable
// transport failure for the caller.
type Client struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:    url,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Post validates doc and sends it. The payload is checked against the schema
// first so a malformed document never reaches the endpoint.
func (c *Client) Post(ctx context.Context, doc PostingDocument) error {
	if c.url == "" {
		return common.NewAppError("LEDGER_CONFIG", "LEDGER_URL is not set", common.ErrTransport)
	}
	if err := ValidatePosting(doc); err != nil {
		return err
	}

	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bs))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("ledger.post.request", "req_id", reqID, "url", c.url, "content_length", len(bs))

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("ledger.post.send_error", "req_id", reqID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return common.NewAppError("LEDGER_POST", "request failed", fmt.Errorf("%w: %v", common.ErrTransport, err))
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("ledger.post.body_close_error", "req_id", reqID, "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("ledger.post.response", "req_id", reqID, "status", resp.StatusCode,
		"bytes", len(raw), "elapsed_ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusCreated {
		return common.NewAppError("LEDGER_POST",
			fmt.Sprintf("status %d: %s", resp.StatusCode, truncate(string(raw), 200)),
			common.ErrTransport)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
