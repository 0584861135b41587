package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/logging"
	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
	"github.com/dmitrijs2005/pomokeeper/internal/server/services"
)

const goodToken = "good-token"

type stubAuth struct {
	password string
	err      error
}

func (a *stubAuth) Login(password string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	if password != a.password {
		return "", common.ErrorUnauthorized
	}
	return goodToken, nil
}

func (a *stubAuth) Authenticated(token string) bool { return token == goodToken }
func (a *stubAuth) Validity() time.Duration        { return time.Hour }

type stubTimers struct {
	status  *models.TimerStatus
	timer   *models.ActiveTimer
	entry   *models.TimeEntry
	err     error
	started services.StartTimerInput
	patch   services.TimerPatch
	saved   *bool
}

func (s *stubTimers) Current(ctx context.Context) (*models.TimerStatus, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.status == nil {
		return nil, common.ErrorNotFound
	}
	return s.status, nil
}

func (s *stubTimers) Start(ctx context.Context, in services.StartTimerInput) (*models.ActiveTimer, error) {
	s.started = in
	return s.timer, s.err
}

func (s *stubTimers) Update(ctx context.Context, p services.TimerPatch) (*models.ActiveTimer, error) {
	s.patch = p
	return s.timer, s.err
}

func (s *stubTimers) Stop(ctx context.Context, save bool) (*models.TimeEntry, error) {
	s.saved = &save
	return s.entry, s.err
}

type stubEntries struct {
	entries []*models.TimeEntry
	export  *services.PublishedExport
	err     error
	filter  models.EntryFilter
	input   services.EntryInput
	patch   services.EntryPatch
}

func (s *stubEntries) Create(ctx context.Context, in services.EntryInput) (*models.TimeEntry, error) {
	s.input = in
	if s.err != nil {
		return nil, s.err
	}
	return &models.TimeEntry{ID: "e1", Duration: 1}, nil
}

func (s *stubEntries) Update(ctx context.Context, id string, p services.EntryPatch) (*models.TimeEntry, error) {
	s.patch = p
	if s.err != nil {
		return nil, s.err
	}
	return &models.TimeEntry{ID: id, Duration: 1}, nil
}

func (s *stubEntries) Get(ctx context.Context, id string) (*models.TimeEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.TimeEntry{ID: id, Duration: 1}, nil
}

func (s *stubEntries) Delete(ctx context.Context, id string) error { return s.err }

func (s *stubEntries) List(ctx context.Context, f models.EntryFilter) ([]*models.TimeEntry, error) {
	s.filter = f
	return s.entries, s.err
}

func (s *stubEntries) ExportCSV(ctx context.Context, f models.EntryFilter, w io.Writer) error {
	s.filter = f
	if s.err != nil {
		return s.err
	}
	return services.WriteEntriesCSV(w, s.entries)
}

func (s *stubEntries) PublishExport(ctx context.Context, f models.EntryFilter) (*services.PublishedExport, error) {
	s.filter = f
	return s.export, s.err
}

type stubCatalog struct {
	clients  []*models.Client
	projects []*models.Project
	err      error
	clientID string
	name     string
}

func (s *stubCatalog) ListClients(ctx context.Context) ([]*models.Client, error) {
	return s.clients, s.err
}

func (s *stubCatalog) GetClient(ctx context.Context, id string) (*models.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Client{ID: id}, nil
}

func (s *stubCatalog) CreateClient(ctx context.Context, name string) (*models.Client, error) {
	s.name = name
	if s.err != nil {
		return nil, s.err
	}
	return &models.Client{ID: "c1", Name: name}, nil
}

func (s *stubCatalog) RenameClient(ctx context.Context, id, name string) (*models.Client, error) {
	s.name = name
	if s.err != nil {
		return nil, s.err
	}
	return &models.Client{ID: id, Name: name}, nil
}

func (s *stubCatalog) DeleteClient(ctx context.Context, id string) error { return s.err }

func (s *stubCatalog) ListProjects(ctx context.Context, clientID string) ([]*models.Project, error) {
	s.clientID = clientID
	return s.projects, s.err
}

func (s *stubCatalog) GetProject(ctx context.Context, id string) (*models.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Project{ID: id}, nil
}

func (s *stubCatalog) CreateProject(ctx context.Context, name, clientID string) (*models.Project, error) {
	s.name, s.clientID = name, clientID
	if s.err != nil {
		return nil, s.err
	}
	return &models.Project{ID: "p1", Name: name, ClientID: clientID}, nil
}

func (s *stubCatalog) RenameProject(ctx context.Context, id, name string) (*models.Project, error) {
	s.name = name
	if s.err != nil {
		return nil, s.err
	}
	return &models.Project{ID: id, Name: name}, nil
}

func (s *stubCatalog) DeleteProject(ctx context.Context, id string) error { return s.err }

type stubSettings struct {
	err   error
	patch services.SettingsPatch
}

func (s *stubSettings) Get(ctx context.Context) (*models.Settings, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Settings{WorkDuration: 25, BreakDuration: 5}, nil
}

func (s *stubSettings) Update(ctx context.Context, p services.SettingsPatch) (*models.Settings, error) {
	s.patch = p
	if s.err != nil {
		return nil, s.err
	}
	return &models.Settings{WorkDuration: *p.WorkDuration, BreakDuration: *p.BreakDuration}, nil
}

type stubs struct {
	auth     *stubAuth
	timers   *stubTimers
	entries  *stubEntries
	catalog  *stubCatalog
	settings *stubSettings
}

var testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (http.Handler, *stubs) {
	t.Helper()
	st := &stubs{
		auth:     &stubAuth{password: "hunter2"},
		timers:   &stubTimers{},
		entries:  &stubEntries{},
		catalog:  &stubCatalog{},
		settings: &stubSettings{},
	}
	s := NewServer(":0", logging.Nop{}, Services{
		Auth:     st.auth,
		Timers:   st.timers,
		Entries:  st.entries,
		Catalog:  st.catalog,
		Settings: st.settings,
	}, true)
	s.now = func() time.Time { return testNow }
	return s.Handler(), st
}

// do performs a request, with the session cookie unless anonymous is set.
func do(t *testing.T, h http.Handler, method, target, body string, anonymous ...bool) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if len(anonymous) == 0 || !anonymous[0] {
		req.AddCookie(&http.Cookie{Name: common.AuthCookieName, Value: goodToken})
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
