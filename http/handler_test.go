package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"users/db"
	"users/engine"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	repo := db.NewUserRepoMock()
	return NewHttpRouter(engine.New(repo), repo)
}

func doRequest(t *testing.T, e *echo.Echo, method, path, body string) response {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestPing(t *testing.T) {
	e := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestListUsersEmpty(t *testing.T) {
	e := newTestRouter(t)

	resp := doRequest(t, e, http.MethodGet, "/", "")
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, "No users found", resp.Message)
}

func TestCheckCreate(t *testing.T) {
	e := newTestRouter(t)

	resp := doRequest(t, e, http.MethodPost, "/check-create", `{"user_id":"u1","name":"Alice","email":"a@x.com"}`)
	assert.Equal(t, 201, resp.Code)

	resp = doRequest(t, e, http.MethodPost, "/check-create", `{"user_id":"u1","name":"Alice","email":"a@x.com"}`)
	assert.Equal(t, 400, resp.Code)
	assert.Equal(t, "User already exists", resp.Message)

	resp = doRequest(t, e, http.MethodGet, "/", "")
	assert.Equal(t, 200, resp.Code)

	resp = doRequest(t, e, http.MethodGet, "/u1", "")
	assert.Equal(t, 200, resp.Code)

	resp = doRequest(t, e, http.MethodGet, "/unknown", "")
	assert.Equal(t, 404, resp.Code)
}

func TestCheckCreateValidation(t *testing.T) {
	e := newTestRouter(t)

	for _, body := range []string{
		``,
		`{}`,
		`{"user_id":"u1"}`,
		`{"user_id":"u1","name":"Alice"}`,
		`{"name":"Alice","email":"a@x.com"}`,
	} {
		resp := doRequest(t, e, http.MethodPost, "/check-create", body)
		assert.Equal(t, 400, resp.Code, "body: %s", body)
		assert.Equal(t, "User info not provided", resp.Message)
	}
}

func TestTicketLifecycle(t *testing.T) {
	e := newTestRouter(t)

	resp := doRequest(t, e, http.MethodPost, "/check-create", `{"user_id":"u1","name":"Alice","email":"a@x.com"}`)
	require.Equal(t, 201, resp.Code)

	// new user starts with an empty collection
	resp = doRequest(t, e, http.MethodGet, "/u1/tickets", "")
	assert.Equal(t, 200, resp.Code)

	resp = doRequest(t, e, http.MethodPost, "/u1/tickets", `{"match_id":"1","ticket_category":"A","serial_no":"100"}`)
	assert.Equal(t, 201, resp.Code)

	resp = doRequest(t, e, http.MethodPost, "/u1/tickets", `{"match_id":"1","ticket_category":"A","serial_no":"100"}`)
	assert.Equal(t, 400, resp.Code)
	assert.Equal(t, "User already has the ticket", resp.Message)

	resp = doRequest(t, e, http.MethodGet, "/u1/tickets/100", "")
	assert.Equal(t, 200, resp.Code)

	resp = doRequest(t, e, http.MethodGet, "/u1/tickets/match/1", "")
	assert.Equal(t, 200, resp.Code)

	resp = doRequest(t, e, http.MethodGet, "/u1/tickets/999", "")
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, "Ticket not found", resp.Message)

	resp = doRequest(t, e, http.MethodGet, "/u1/tickets/match/999", "")
	assert.Equal(t, 404, resp.Code)

	resp = doRequest(t, e, http.MethodDelete, "/u1/tickets/100", "")
	assert.Equal(t, 200, resp.Code)

	resp = doRequest(t, e, http.MethodDelete, "/u1/tickets/100", "")
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, "Ticket not found", resp.Message)
}

func TestTicketEndpointsUnknownUser(t *testing.T) {
	e := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/nobody/tickets", ""},
		{http.MethodGet, "/nobody/tickets/100", ""},
		{http.MethodGet, "/nobody/tickets/match/1", ""},
		{http.MethodPost, "/nobody/tickets", `{"match_id":"1","ticket_category":"A","serial_no":"100"}`},
		{http.MethodDelete, "/nobody/tickets/100", ""},
	} {
		resp := doRequest(t, e, tc.method, tc.path, tc.body)
		assert.Equal(t, 404, resp.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "User not found", resp.Message)
	}
}

func TestAddTicketValidation(t *testing.T) {
	e := newTestRouter(t)

	resp := doRequest(t, e, http.MethodPost, "/check-create", `{"user_id":"u1","name":"Alice","email":"a@x.com"}`)
	require.Equal(t, 201, resp.Code)

	for _, body := range []string{
		``,
		`{}`,
		`{"match_id":"1"}`,
		`{"match_id":"1","ticket_category":"A"}`,
		`{"ticket_category":"A","serial_no":"100"}`,
	} {
		resp := doRequest(t, e, http.MethodPost, "/u1/tickets", body)
		assert.Equal(t, 400, resp.Code, "body: %s", body)
		assert.Equal(t, "Ticket info not provided", resp.Message)
	}
}
