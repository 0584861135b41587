package cli

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/dmitrijs2005/pomokeeper/internal/client/models"
	"github.com/dmitrijs2005/pomokeeper/internal/logging"
)

var errBoom = errors.New("boom")

// fakeAPI is an in-memory client.Client recording what it was asked to do.
type fakeAPI struct {
	mu sync.Mutex

	session string
	authed  bool

	timer    *models.Timer
	settings models.Settings
	clients  []models.Client
	entries  []models.Entry
	stopped  *models.Entry
	export   models.Export
	csv      string

	starts    []models.StartTimer
	updates   []models.TimerUpdate
	stops     []bool
	created   []models.NewEntry
	queries   []models.EntryQuery
	passwords []string

	// failures, keyed by method name
	fail map[string]error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		settings: models.Settings{WorkDuration: 25, BreakDuration: 5},
		fail:     map[string]error{},
	}
}

func (f *fakeAPI) err(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fail[method]
}

func (f *fakeAPI) Session() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func (f *fakeAPI) SetSession(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = token
}

func (f *fakeAPI) Login(_ context.Context, password []byte) error {
	f.mu.Lock()
	f.passwords = append(f.passwords, string(password))
	f.mu.Unlock()
	if err := f.err("Login"); err != nil {
		return err
	}
	f.SetSession("tok")
	return nil
}

func (f *fakeAPI) Logout(context.Context) error {
	f.SetSession("")
	return f.err("Logout")
}

func (f *fakeAPI) Authenticated(context.Context) (bool, error) {
	if err := f.err("Authenticated"); err != nil {
		return false, err
	}
	return f.authed, nil
}

func (f *fakeAPI) Timer(context.Context) (*models.Timer, error) {
	if err := f.err("Timer"); err != nil {
		return nil, err
	}
	return f.timer, nil
}

func (f *fakeAPI) StartTimer(_ context.Context, in models.StartTimer) (*models.Timer, error) {
	if err := f.err("StartTimer"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts = append(f.starts, in)
	return &models.Timer{}, nil
}

func (f *fakeAPI) UpdateTimer(_ context.Context, u models.TimerUpdate) (*models.Timer, error) {
	if err := f.err("UpdateTimer"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, u)
	return &models.Timer{}, nil
}

func (f *fakeAPI) StopTimer(_ context.Context, save bool) (*models.Entry, error) {
	if err := f.err("StopTimer"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops = append(f.stops, save)
	if !save {
		return nil, nil
	}
	return f.stopped, nil
}

func (f *fakeAPI) Clients(context.Context) ([]models.Client, error) {
	return f.clients, f.err("Clients")
}

func (f *fakeAPI) Projects(context.Context, string) ([]models.Project, error) {
	return nil, f.err("Projects")
}

func (f *fakeAPI) Entries(_ context.Context, q models.EntryQuery) ([]models.Entry, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	return f.entries, f.err("Entries")
}

func (f *fakeAPI) CreateEntry(_ context.Context, in models.NewEntry) (*models.Entry, error) {
	if err := f.err("CreateEntry"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, in)
	return &models.Entry{ID: "e-new", Duration: in.Duration}, nil
}

func (f *fakeAPI) ExportCSV(_ context.Context, _ models.EntryQuery, w io.Writer) error {
	if err := f.err("ExportCSV"); err != nil {
		return err
	}
	_, err := io.WriteString(w, f.csv)
	return err
}

func (f *fakeAPI) PublishExport(context.Context, models.EntryQuery) (*models.Export, error) {
	if err := f.err("PublishExport"); err != nil {
		return nil, err
	}
	exp := f.export
	return &exp, nil
}

func (f *fakeAPI) Settings(context.Context) (*models.Settings, error) {
	if err := f.err("Settings"); err != nil {
		return nil, err
	}
	s := f.settings
	return &s, nil
}

func (f *fakeAPI) UpdateSettings(_ context.Context, s models.Settings) (*models.Settings, error) {
	if err := f.err("UpdateSettings"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings = s
	return &s, nil
}

type notice struct{ title, body string }

type fakeNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (n *fakeNotifier) Notify(title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{title, body})
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.notices)
}

type logRecord struct{ level, msg string }

// recordingLogger keeps level and message of every record, children included.
type recordingLogger struct {
	mu      sync.Mutex
	records []logRecord
}

func (l *recordingLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, logRecord{level, msg})
}

func (l *recordingLogger) Debug(_ context.Context, msg string, _ ...any) { l.add("DEBUG", msg) }
func (l *recordingLogger) Info(_ context.Context, msg string, _ ...any)  { l.add("INFO", msg) }
func (l *recordingLogger) Warn(_ context.Context, msg string, _ ...any)  { l.add("WARN", msg) }
func (l *recordingLogger) Error(_ context.Context, msg string, _ ...any) { l.add("ERROR", msg) }
func (l *recordingLogger) With(...any) logging.Logger                    { return l }

func (l *recordingLogger) messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, r := range l.records {
		if r.level == level {
			out = append(out, r.msg)
		}
	}
	return out
}

func (l *recordingLogger) count(level string) int {
	return len(l.messages(level))
}
