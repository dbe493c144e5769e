package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"booking-core/internal/pkg/errs"
)

type pushMessage struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// PushClient delivers a text message to an external recipient through the
// push notification channel.
type PushClient struct {
	url    string
	token  string
	client *http.Client
}

func NewPushClient(url, token string, timeout time.Duration) *PushClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &PushClient{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *PushClient) Send(ctx context.Context, recipientID, text string) error {
	body, err := json.Marshal(pushMessage{To: recipientID, Text: text})
	if err != nil {
		return errs.Wrap(err, "encode push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return errs.Newf("push channel returned %d: %s", resp.StatusCode, string(b))
}
