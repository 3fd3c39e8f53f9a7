package ws

import (
	"animalquiz/internal/cache"
	"animalquiz/internal/model"
	"animalquiz/internal/quiz"
	"animalquiz/internal/service"
	"context"
	"encoding/json"
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

func readView(t *testing.T, conn *websocket.Conn) model.AttemptView {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, MsgState, msg.Type)

	var view model.AttemptView
	require.NoError(t, json.Unmarshal(msg.Payload, &view))
	return view
}

func TestAttemptWSReceivesUpdates(t *testing.T) {
	logger := zap.NewNop()
	authSvc := service.NewAuthService("secret")
	attemptSvc := service.NewAttemptService(quiz.DefaultBank(), cache.NewMemoryAttemptCache(time.Hour), authSvc, "", logger)
	hub := NewHub(logger)
	defer hub.Close()
	attemptSvc.SetBroadcaster(hub)

	srv := httptest.NewServer(http.HandlerFunc(NewHandler(hub, authSvc, attemptSvc, logger).AttemptWS))
	defer srv.Close()

	ctx := context.Background()
	start, err := attemptSvc.Start(ctx)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=" + start.Token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	initial := readView(t, conn)
	assert.Equal(t, *start.View, initial)
	// the socket is subscribed by the time its first view arrives
	assert.Equal(t, 1, hub.Watchers(start.AttemptID))

	_, err = attemptSvc.Answer(ctx, start.AttemptID, 2)
	require.NoError(t, err)

	next := readView(t, conn)
	require.NotNil(t, next.Question)
	assert.Equal(t, 2, next.Question.Number)
}

func TestAttemptWSRejectsBadToken(t *testing.T) {
	logger := zap.NewNop()
	authSvc := service.NewAuthService("secret")
	attemptSvc := service.NewAttemptService(quiz.DefaultBank(), cache.NewMemoryAttemptCache(time.Hour), authSvc, "", logger)
	hub := NewHub(logger)
	defer hub.Close()

	srv := httptest.NewServer(http.HandlerFunc(NewHandler(hub, authSvc, attemptSvc, logger).AttemptWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=nope"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}
