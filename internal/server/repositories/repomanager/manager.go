package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/pomokeeper/internal/dbx"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/clients"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/projects"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/settings"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/timers"
)

// RepositoryManager vends repositories bound to a handle, so services can
// use the same code path with *sql.DB and inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Clients(db dbx.DBTX) clients.Repository
	Projects(db dbx.DBTX) projects.Repository
	Entries(db dbx.DBTX) entries.Repository
	Timers(db dbx.DBTX) timers.Repository
	Settings(db dbx.DBTX) settings.Repository
}
