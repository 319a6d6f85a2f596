package live

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/yashasviudayan/portfolio/internal/section"
)

func newTestServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := NewHub(section.Links(), textRenderer{}, nil)
	r := gin.New()
	r.GET("/ws", hub.Handler())
	r.GET("/healthz", hub.Status)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?path=" + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	var f Frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestHubRunsSessionOverWebsocket(t *testing.T) {
	hub, srv := newTestServer(t)
	conn := dial(t, srv, "/")

	f := readFrame(t, conn)
	require.Equal(t, FrameState, f.Type)
	require.Contains(t, f.Nav, "active=home")
	require.Equal(t, 1, hub.Len())

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: TypeScroll, Offset: 500, Document: 3000, Viewport: 800}))
	f = readFrame(t, conn)
	require.Contains(t, f.Nav, "scrolled=true")
	require.Equal(t, "22.73%", f.Progress)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	f = readFrame(t, conn)
	require.Equal(t, FrameError, f.Type)
	require.Equal(t, ErrMalformed.Error(), f.Error)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond,
		"closing the socket must tear the session down")
}

func TestHubSessionsAreIndependent(t *testing.T) {
	hub, srv := newTestServer(t)

	home := dial(t, srv, "/")
	away := dial(t, srv, "/hobbies")
	defer home.Close()
	defer away.Close()

	readFrame(t, home)
	f := readFrame(t, away)
	require.NotContains(t, f.Nav, "active=home")
	require.Eventually(t, func() bool { return hub.Len() == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, home.WriteJSON(ClientMessage{Type: TypeTheme}))
	require.Equal(t, "light", readFrame(t, home).Theme)

	require.NoError(t, away.WriteJSON(ClientMessage{Type: TypeMenu}))
	require.Equal(t, "dark", readFrame(t, away).Theme, "theme is per page session")
}

func TestHubStopEndsSessions(t *testing.T) {
	hub, srv := newTestServer(t)
	conn := dial(t, srv, "/")
	defer conn.Close()
	readFrame(t, conn)

	hub.Stop()
	require.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)

	_, _, err := conn.ReadMessage()
	require.Error(t, err)
}
