package services

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/dbx"
	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/clients"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/projects"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/settings"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/timers"
)

// -------- test fakes --------

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type fakeTimersRepo struct {
	timers.Repository
	t      *models.ActiveTimer
	getErr error
	putErr error
}

func (f *fakeTimersRepo) Get(ctx context.Context) (*models.ActiveTimer, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.t == nil {
		return nil, common.ErrorNotFound
	}
	c := *f.t
	return &c, nil
}

func (f *fakeTimersRepo) Put(ctx context.Context, t *models.ActiveTimer) error {
	if f.putErr != nil {
		return f.putErr
	}
	c := *t
	f.t = &c
	return nil
}

func (f *fakeTimersRepo) Delete(ctx context.Context) error {
	if f.t == nil {
		return common.ErrorNotFound
	}
	f.t = nil
	return nil
}

type fakeEntriesRepo struct {
	entries.Repository
	byID      map[string]*models.TimeEntry
	createErr error
	listErr   error
	lastQuery models.EntryFilter
}

func newFakeEntries() *fakeEntriesRepo {
	return &fakeEntriesRepo{byID: map[string]*models.TimeEntry{}}
}

func (f *fakeEntriesRepo) Create(ctx context.Context, e *models.TimeEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	c := *e
	f.byID[e.ID] = &c
	return nil
}

func (f *fakeEntriesRepo) Get(ctx context.Context, id string) (*models.TimeEntry, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *e
	return &c, nil
}

func (f *fakeEntriesRepo) List(ctx context.Context, q models.EntryFilter) ([]*models.TimeEntry, error) {
	f.lastQuery = q
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := []*models.TimeEntry{}
	for _, e := range f.byID {
		// same half-open window as the SQL: created_at >= from AND created_at < before
		if q.CreatedFrom != nil && e.CreatedAt.Before(*q.CreatedFrom) {
			continue
		}
		if q.CreatedBefore != nil && !e.CreatedAt.Before(*q.CreatedBefore) {
			continue
		}
		c := *e
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeEntriesRepo) Update(ctx context.Context, e *models.TimeEntry) error {
	if _, ok := f.byID[e.ID]; !ok {
		return common.ErrorNotFound
	}
	c := *e
	f.byID[e.ID] = &c
	return nil
}

func (f *fakeEntriesRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeClientsRepo struct {
	clients.Repository
	byID    map[string]*models.Client
	listErr error
}

func newFakeClients() *fakeClientsRepo {
	return &fakeClientsRepo{byID: map[string]*models.Client{}}
}

func (f *fakeClientsRepo) Create(ctx context.Context, c *models.Client) error {
	cc := *c
	f.byID[c.ID] = &cc
	return nil
}

func (f *fakeClientsRepo) Get(ctx context.Context, id string) (*models.Client, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cc := *c
	return &cc, nil
}

func (f *fakeClientsRepo) List(ctx context.Context) ([]*models.Client, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := []*models.Client{}
	for _, c := range f.byID {
		cc := *c
		result = append(result, &cc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeClientsRepo) Update(ctx context.Context, c *models.Client) error {
	cur, ok := f.byID[c.ID]
	if !ok {
		return common.ErrorNotFound
	}
	cur.Name = c.Name
	cur.UpdatedAt = c.UpdatedAt
	return nil
}

func (f *fakeClientsRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeProjectsRepo struct {
	projects.Repository
	byID    map[string]*models.Project
	clients *fakeClientsRepo
}

func newFakeProjects(c *fakeClientsRepo) *fakeProjectsRepo {
	return &fakeProjectsRepo{byID: map[string]*models.Project{}, clients: c}
}

func (f *fakeProjectsRepo) withClient(p *models.Project) *models.Project {
	pp := *p
	if c, ok := f.clients.byID[p.ClientID]; ok {
		cc := *c
		pp.Client = &cc
	}
	return &pp
}

func (f *fakeProjectsRepo) Create(ctx context.Context, p *models.Project) error {
	pp := *p
	f.byID[p.ID] = &pp
	return nil
}

func (f *fakeProjectsRepo) Get(ctx context.Context, id string) (*models.Project, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return f.withClient(p), nil
}

func (f *fakeProjectsRepo) List(ctx context.Context, clientID string) ([]*models.Project, error) {
	result := []*models.Project{}
	for _, p := range f.byID {
		if clientID != "" && p.ClientID != clientID {
			continue
		}
		result = append(result, f.withClient(p))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeProjectsRepo) Update(ctx context.Context, p *models.Project) error {
	cur, ok := f.byID[p.ID]
	if !ok {
		return common.ErrorNotFound
	}
	cur.Name = p.Name
	cur.UpdatedAt = p.UpdatedAt
	return nil
}

func (f *fakeProjectsRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeSettingsRepo struct {
	settings.Repository
	s      *models.Settings
	putErr error
	puts   int
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	if f.s == nil {
		return nil, common.ErrorNotFound
	}
	c := *f.s
	return &c, nil
}

func (f *fakeSettingsRepo) Put(ctx context.Context, s *models.Settings) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts++
	c := *s
	f.s = &c
	return nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	c  *fakeClientsRepo
	p  *fakeProjectsRepo
	e  *fakeEntriesRepo
	t  *fakeTimersRepo
	st *fakeSettingsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	c := newFakeClients()
	return &fakeRepoManager{
		c:  c,
		p:  newFakeProjects(c),
		e:  newFakeEntries(),
		t:  &fakeTimersRepo{},
		st: &fakeSettingsRepo{},
	}
}

func (m *fakeRepoManager) Clients(db dbx.DBTX) clients.Repository   { return m.c }
func (m *fakeRepoManager) Projects(db dbx.DBTX) projects.Repository { return m.p }
func (m *fakeRepoManager) Entries(db dbx.DBTX) entries.Repository   { return m.e }
func (m *fakeRepoManager) Timers(db dbx.DBTX) timers.Repository     { return m.t }
func (m *fakeRepoManager) Settings(db dbx.DBTX) settings.Repository { return m.st }

// -------- helpers --------

var fixedNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// expectTx registers one transaction that ends in commit or rollback.
func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// withIDs makes newID return the given ids in order.
func withIDs(t *testing.T, ids ...string) {
	t.Helper()
	orig := newID
	t.Cleanup(func() { newID = orig })
	i := 0
	newID = func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func ptr[T any](v T) *T { return &v }
