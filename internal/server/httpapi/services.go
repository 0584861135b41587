package httpapi

import (
	"context"
	"io"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
	"github.com/dmitrijs2005/pomokeeper/internal/server/services"
)

type Authenticator interface {
	Login(password string) (string, error)
	Authenticated(token string) bool
	Validity() time.Duration
}

type TimerService interface {
	Current(ctx context.Context) (*models.TimerStatus, error)
	Start(ctx context.Context, in services.StartTimerInput) (*models.ActiveTimer, error)
	Update(ctx context.Context, p services.TimerPatch) (*models.ActiveTimer, error)
	Stop(ctx context.Context, save bool) (*models.TimeEntry, error)
}

type EntryService interface {
	Create(ctx context.Context, in services.EntryInput) (*models.TimeEntry, error)
	Update(ctx context.Context, id string, p services.EntryPatch) (*models.TimeEntry, error)
	Get(ctx context.Context, id string) (*models.TimeEntry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f models.EntryFilter) ([]*models.TimeEntry, error)
	ExportCSV(ctx context.Context, f models.EntryFilter, w io.Writer) error
	PublishExport(ctx context.Context, f models.EntryFilter) (*services.PublishedExport, error)
}

type CatalogService interface {
	ListClients(ctx context.Context) ([]*models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	CreateClient(ctx context.Context, name string) (*models.Client, error)
	RenameClient(ctx context.Context, id, name string) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error
	ListProjects(ctx context.Context, clientID string) ([]*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, name, clientID string) (*models.Project, error)
	RenameProject(ctx context.Context, id, name string) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, p services.SettingsPatch) (*models.Settings, error)
}

// Services bundles everything the handlers call into.
type Services struct {
	Auth     Authenticator
	Timers   TimerService
	Entries  EntryService
	Catalog  CatalogService
	Settings SettingsService
}
