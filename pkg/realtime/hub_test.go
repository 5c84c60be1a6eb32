package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub([]string{"*"}, zap.NewNop())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, r.URL.Query().Get("user"))
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?user=u1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connections("u1") == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish("u2", map[string]string{"title": "not for u1"})
	hub.Publish("u1", map[string]string{"title": "hello"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"hello"}`, string(msg))
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://app.example.com"})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.True(t, check(r))

	r.Header.Set("Origin", "https://app.example.com")
	assert.True(t, check(r))

	r.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(r))
}

func TestHub_PublishEvictsSlowClient(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	slow := &client{send: make(chan []byte, 1), closeCode: websocket.CloseNormalClosure}
	fast := &client{send: make(chan []byte, 4), closeCode: websocket.CloseNormalClosure}
	hub.add("u1", slow)
	hub.add("u1", fast)

	hub.Publish("u1", map[string]int{"n": 1})
	assert.Equal(t, 2, hub.Connections("u1"))

	hub.Publish("u1", map[string]int{"n": 2})
	assert.Equal(t, 1, hub.Connections("u1"))
	assert.Equal(t, websocket.CloseTryAgainLater, slow.closeCode)

	// buffered message is still delivered before the close
	msg, ok := <-slow.send
	require.True(t, ok)
	assert.JSONEq(t, `{"n":1}`, string(msg))
	_, ok = <-slow.send
	assert.False(t, ok)

	assert.Len(t, fast.send, 2)

	// the deferred remove from Serve must not close the channel twice
	assert.NotPanics(t, func() { hub.remove("u1", slow) })
	assert.Equal(t, 1, hub.Connections("u1"))
}
