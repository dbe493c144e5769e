//go:build unit

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushClient_Send(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var msg pushMessage
			require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
			assert.Equal(t, "user-1", msg.To)
			assert.Equal(t, "paid", msg.Text)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		c := NewPushClient(srv.URL, "tok", time.Second)
		assert.NoError(t, c.Send(context.Background(), "user-1", "paid"))
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := NewPushClient(srv.URL, "", time.Second)
		err := c.Send(context.Background(), "user-1", "paid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})
}

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestEventPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newEventPublisherWithWriter(w)

	err := p.Publish(context.Background(), []byte("order-1"), []byte(`{"event":"order.paid"}`), map[string]string{"event": "order.paid"})

	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("order-1"), w.msgs[0].Key)
	assert.Equal(t, []kafka.Header{{Key: "event", Value: []byte("order.paid")}}, w.msgs[0].Headers)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestEventPublisher_PublishError(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	p := newEventPublisherWithWriter(w)

	err := p.Publish(context.Background(), []byte("k"), []byte("v"), nil)

	assert.Error(t, err)
}
