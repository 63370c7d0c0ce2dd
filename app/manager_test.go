package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noorjahan04/live-polling-system/config"
	"github.com/noorjahan04/live-polling-system/models"
)

func newTestManager() *Manager {
	return NewManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHealthEndpoint(t *testing.T) {
	m := newTestManager()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := httptest.NewServer(m.Router(&config.ServiceConfig{}, log))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHistoryEndpoint(t *testing.T) {
	m := newTestManager()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := httptest.NewServer(m.Router(&config.ServiceConfig{}, log))
	defer srv.Close()

	// run one poll to completion; no clients are connected, so the
	// notifier fan-out is a no-op and only the state matters here
	m.Session.StudentJoin("c1", "s1", "Ana")
	require.NoError(t, m.Session.CreatePoll("t-conn", "Color?", []string{"Red", "Blue"}, 30))
	m.Session.StartPoll()
	m.Session.SubmitAnswer("s1", 0)

	resp, err := http.Get(srv.URL + "/api/history")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var history []models.Poll
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&history))
	require.Len(t, history, 1)
	require.Equal(t, "Color?", history[0].Question)
	require.Equal(t, models.StatusEnded, history[0].Status)
	require.Equal(t, []string{"s1"}, history[0].Options[0].Votes)
}
