package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/client/models"
	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	cookie string
	body   map[string]any
}

// newTestClient serves handler and records the last request it saw.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *recorded) {
	t.Helper()

	last := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.method = r.Method
		last.path = r.URL.Path
		last.query = r.URL.RawQuery
		last.cookie = ""
		if c, err := r.Cookie(common.AuthCookieName); err == nil {
			last.cookie = c.Value
		}
		last.body = nil
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			assert.NoError(t, json.Unmarshal(b, &last.body))
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return NewHTTPClient(srv.URL+"/", time.Second), last
}

func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestLogin_StoresSessionCookie(t *testing.T) {
	c, last := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: common.AuthCookieName, Value: "tok-1", Path: "/"})
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	require.NoError(t, c.Login(context.Background(), []byte("hunter2")))
	assert.Equal(t, "tok-1", c.Session())
	assert.Equal(t, http.MethodPost, last.method)
	assert.Equal(t, "/api/auth", last.path)
	assert.Equal(t, map[string]any{"password": "hunter2"}, last.body)
}

func TestLogin_WrongPassword(t *testing.T) {
	c, _ := newTestClient(t, reply(http.StatusUnauthorized, `{"error":"Invalid password"}`))

	err := c.Login(context.Background(), []byte("nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Equal(t, "Invalid password", err.Error())
	assert.Empty(t, c.Session())
}

func TestLogin_NoCookie(t *testing.T) {
	c, _ := newTestClient(t, reply(http.StatusOK, `{"success":true}`))

	err := c.Login(context.Background(), []byte("pw"))
	require.Error(t, err)
	assert.Empty(t, c.Session())
}

func TestLogout_ClearsSession(t *testing.T) {
	c, last := newTestClient(t, reply(http.StatusOK, `{"success":true}`))
	c.SetSession("tok")

	require.NoError(t, c.Logout(context.Background()))
	assert.Equal(t, http.MethodDelete, last.method)
	assert.Equal(t, "tok", last.cookie)
	assert.Empty(t, c.Session())
}

func TestAuthenticated(t *testing.T) {
	c, last := newTestClient(t, reply(http.StatusOK, `{"authenticated":true}`))
	c.SetSession("tok")

	ok, err := c.Authenticated(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", last.cookie)
}

func TestTimer_NullMeansIdle(t *testing.T) {
	c, _ := newTestClient(t, reply(http.StatusOK, `null`))

	timer, err := c.Timer(context.Background())
	require.NoError(t, err)
	assert.Nil(t, timer)
}

func TestTimer_Running(t *testing.T) {
	c, _ := newTestClient(t, reply(http.StatusOK,
		`{"startTime":"2024-01-15T09:00:00Z","isPaused":true,"accumulated":120,"projectId":"p1","description":"code","elapsedSeconds":120}`))

	timer, err := c.Timer(context.Background())
	require.NoError(t, err)
	require.NotNil(t, timer)
	assert.True(t, timer.IsPaused)
	assert.Equal(t, int64(120), timer.Accumulated)
	require.NotNil(t, timer.ProjectID)
	assert.Equal(t, "p1", *timer.ProjectID)
}

func TestStartTimer(t *testing.T) {
	c, last := newTestClient(t, reply(http.StatusOK, `{"startTime":"2024-01-15T09:00:00Z","accumulated":0}`))
	project := "p1"

	timer, err := c.StartTimer(context.Background(), models.StartTimer{ProjectID: &project, Description: "code"})
	require.NoError(t, err)
	require.NotNil(t, timer)
	assert.Equal(t, http.MethodPost, last.method)
	assert.Equal(t, "/api/timer", last.path)
	assert.Equal(t, map[string]any{"projectId": "p1", "description": "code"}, last.body)
}

func TestUpdateTimer_SendsOnlySetFields(t *testing.T) {
	c, last := newTestClient(t, reply(http.StatusOK, `{"startTime":"2024-01-15T09:00:00Z","isPaused":true,"accumulated":300}`))
	paused := true
	acc := int64(300)

	timer, err := c.UpdateTimer(context.Background(), models.TimerUpdate{IsPaused: &paused, Accumulated: &acc, ClearProject: true})
	require.NoError(t, err)
	assert.True(t, timer.IsPaused)
	assert.Equal(t, http.MethodPut, last.method)
	assert.Equal(t, map[string]any{"isPaused": true, "accumulated": float64(300), "projectId": nil}, last.body)
}

func TestUpdateTimer_NoActiveTimer(t *testing.T) {
	c, _ := newTestClient(t, reply(http.StatusNotFound, `{"error":"No active timer"}`))

	_, err := c.UpdateTimer(context.Background(), models.TimerUpdate{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "No active timer", apiErr.Message)
}

func TestStopTimer(t *testing.T) {
	t.Run("saved", func(t *testing.T) {
		c, last := newTestClient(t, reply(http.StatusOK, `{"success":true,"entry":{"id":"e1","duration":25}}`))

		entry, err := c.StopTimer(context.Background(), true)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, "e1", entry.ID)
		assert.Equal(t, 25, entry.Duration)
		assert.Equal(t, "save=true", last.query)
	})

	t.Run("discarded", func(t *testing.T) {
		c, last := newTestClient(t, reply(http.StatusOK, `{"success":true}`))

		entry, err := c.StopTimer(context.Background(), false)
		require.NoError(t, err)
		assert.Nil(t, entry)
		assert.Equal(t, "save=false", last.query)
	})
}

func TestCatalog(t *testing.T) {
	c, last := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/clients":
			_, _ = io.WriteString(w, `[{"id":"c1","name":"Acme","projects":[{"id":"p1","name":"Site","clientId":"c1"}]}]`)
		case "/api/projects":
			_, _ = io.WriteString(w, `[{"id":"p1","name":"Site","clientId":"c1","client":{"id":"c1","name":"Acme"}}]`)
		}
	})

	clients, err := c.Clients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme", clients[0].Name)
	require.Len(t, clients[0].Projects, 1)

	projects, err := c.Projects(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Acme", projects[0].Client.Name)
	assert.Equal(t, "clientId=c1", last.query)

	_, err = c.Projects(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, last.query)
}

func TestEntries_Query(t *testing.T) {
	c, last := newTestClient(t, reply(http.StatusOK, `[{"id":"e1","duration":30,"project":{"id":"p1","name":"Site","clientId":"c1"}}]`))
	invoiced := false

	entries, err := c.Entries(context.Background(), models.EntryQuery{
		ProjectID: "p1",
		Invoiced:  &invoiced,
		DateFrom:  "2024-01-01",
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Site", entries[0].Label())
	assert.Equal(t, "dateFrom=2024-01-01&invoiced=false&projectId=p1", last.query)
}

func TestCreateEntry_Validation(t *testing.T) {
	c, last := newTestClient(t, reply(http.StatusBadRequest, `{"error":"Duration must be at least 1 minute"}`))

	_, err := c.CreateEntry(context.Background(), models.NewEntry{Duration: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, "Duration must be at least 1 minute", err.Error())
	assert.Equal(t, map[string]any{"duration": float64(0)}, last.body)
}

func TestExportCSV(t *testing.T) {
	const csv = "Date,Client,Project,Description,Duration (minutes),Duration (hours)\r\n"
	c, last := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = io.WriteString(w, csv)
	})

	var buf bytes.Buffer
	require.NoError(t, c.ExportCSV(context.Background(), models.EntryQuery{ClientID: "c1"}, &buf))
	assert.Equal(t, csv, buf.String())
	assert.Equal(t, "/api/entries/export.csv", last.path)
	assert.Equal(t, "clientId=c1", last.query)
}

func TestPublishExport(t *testing.T) {
	c, last := newTestClient(t, reply(http.StatusOK, `{"key":"exports/a.csv","url":"https://s3/a.csv"}`))

	out, err := c.PublishExport(context.Background(), models.EntryQuery{})
	require.NoError(t, err)
	assert.Equal(t, "https://s3/a.csv", out.URL)
	assert.Equal(t, http.MethodPost, last.method)
	assert.Equal(t, "/api/exports", last.path)
}

func TestSettings(t *testing.T) {
	c, last := newTestClient(t, reply(http.StatusOK, `{"workDuration":50,"breakDuration":10}`))

	got, err := c.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Settings{WorkDuration: 50, BreakDuration: 10}, *got)

	_, err = c.UpdateSettings(context.Background(), models.Settings{WorkDuration: 50, BreakDuration: 10})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, last.method)
	assert.Equal(t, map[string]any{"workDuration": float64(50), "breakDuration": float64(10)}, last.body)
}

func TestServerErrorWithoutJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.Settings(context.Background())
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
	assert.False(t, errors.Is(err, common.ErrorNotFound))
}

func TestUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second)
	_, err := c.Timer(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}
