package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/pomokeeper/internal/client/models"
)

type Client interface {
	Session() string
	SetSession(token string)

	Login(ctx context.Context, password []byte) error
	Logout(ctx context.Context) error
	Authenticated(ctx context.Context) (bool, error)

	// Timer returns nil without error when nothing is running.
	Timer(ctx context.Context) (*models.Timer, error)
	StartTimer(ctx context.Context, in models.StartTimer) (*models.Timer, error)
	UpdateTimer(ctx context.Context, u models.TimerUpdate) (*models.Timer, error)
	// StopTimer returns the saved entry, or nil when nothing was saved.
	StopTimer(ctx context.Context, save bool) (*models.Entry, error)

	Clients(ctx context.Context) ([]models.Client, error)
	Projects(ctx context.Context, clientID string) ([]models.Project, error)

	Entries(ctx context.Context, q models.EntryQuery) ([]models.Entry, error)
	CreateEntry(ctx context.Context, in models.NewEntry) (*models.Entry, error)
	ExportCSV(ctx context.Context, q models.EntryQuery, w io.Writer) error
	PublishExport(ctx context.Context, q models.EntryQuery) (*models.Export, error)

	Settings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, s models.Settings) (*models.Settings, error)
}
