package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fusion-site/internal/services"
	"fusion-site/internal/storage"

	"github.com/go-redis/redismock/v9"
	"github.com/pocketbase/pocketbase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runEvents(t *testing.T, args ...string) string {
	t.Helper()
	command := newEventsCommand(services.NewEventService(storage.NewMemoryEventStore(storage.SeedEvents())))

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetArgs(args)
	require.NoError(t, command.ExecuteContext(context.Background()))
	return out.String()
}

func TestEventsCommand(t *testing.T) {
	out := runEvents(t)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	require.Len(t, lines, len(storage.SeedEvents())+1)
	assert.True(t, strings.HasPrefix(lines[0], "ORDER"))
	assert.Contains(t, lines[1], "fusion-summer-school-2024")
	assert.Contains(t, lines[1], "School,Training,Fusion")
}

func TestEventsCommand_Tag(t *testing.T) {
	out := runEvents(t, "--tag", "Conference")

	assert.Contains(t, out, "international-fusion-conference-2023")
	assert.NotContains(t, out, "fusion-summer-school-2024")
}

func healthRequest() (*core.RequestEvent, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	e.Response = rec
	return e, rec
}

func TestHealthHandler_NoRedis(t *testing.T) {
	e, rec := healthRequest()
	require.NoError(t, healthHandler(nil)(e))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestHealthHandler_Redis(t *testing.T) {
	db, mock := redismock.NewClientMock()

	mock.ExpectPing().SetVal("PONG")
	e, rec := healthRequest()
	require.NoError(t, healthHandler(db)(e))
	assert.Equal(t, http.StatusOK, rec.Code)

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	e, rec = healthRequest()
	require.NoError(t, healthHandler(db)(e))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body["status"])
	assert.Contains(t, body["error"], "connection refused")

	assert.NoError(t, mock.ExpectationsWereMet())
}
