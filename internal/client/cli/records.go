package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/pomokeeper/internal/client/models"
	"github.com/dmitrijs2005/pomokeeper/internal/filex"
	"github.com/dmitrijs2005/pomokeeper/internal/netx"
	"github.com/dmitrijs2005/pomokeeper/internal/timex"
)

// downloadFn is a test seam for netx.DownloadPresignedURL.
var downloadFn = netx.DownloadPresignedURL

// Projects lists clients with their projects; ids are what `project` takes.
func (a *App) Projects(ctx context.Context, _ []string) error {
	clients, err := a.api.Clients(ctx)
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		a.println(dimStyle.Render("No clients yet"))
		return nil
	}
	for _, c := range clients {
		a.println(titleStyle.Render(c.Name))
		if len(c.Projects) == 0 {
			a.println(dimStyle.Render("  (no projects)"))
		}
		for _, p := range c.Projects {
			a.printf("  %s  %s\n", p.ID, p.Name)
		}
	}
	return nil
}

// Entries lists entries, optionally bounded by dates: entries [from [to]].
func (a *App) Entries(ctx context.Context, args []string) error {
	q, err := dateQuery(args)
	if err != nil {
		a.println("Usage: entries [YYYY-MM-DD [YYYY-MM-DD]]")
		return err
	}

	entries, err := a.api.Entries(ctx, q)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		a.println(dimStyle.Render("No entries"))
		return nil
	}

	total := 0
	for _, e := range entries {
		a.println(formatEntry(e))
		total += e.Duration
	}
	a.println(dimStyle.Render(fmt.Sprintf("%d entries, %s total", len(entries), timex.FormatDuration(total))))
	return nil
}

func dateQuery(args []string) (models.EntryQuery, error) {
	var q models.EntryQuery
	switch len(args) {
	case 0:
	case 2:
		q.DateTo = args[1]
		fallthrough
	case 1:
		q.DateFrom = args[0]
	default:
		return q, errUsage
	}
	return q, nil
}

func formatEntry(e models.Entry) string {
	date := e.CreatedAt
	if e.StartTime != nil {
		date = *e.StartTime
	}
	line := fmt.Sprintf("%s  %-8s %s", date.Format("2006-01-02"), timex.FormatDuration(e.Duration), e.Label())
	if e.Description != nil && *e.Description != "" {
		line += "  " + *e.Description
	}
	if e.Invoiced {
		line += " " + dimStyle.Render("(invoiced)")
	}
	line += " " + dimStyle.Render(e.ID)
	return line
}

// Add records a manual entry: add <minutes> [description]. The selected
// project is used.
func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("Usage: add <minutes> [description]")
		return errUsage
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		a.println("Usage: add <minutes> [description]")
		return errUsage
	}

	in := models.NewEntry{
		ProjectID:   a.ctrl.State().ProjectID,
		Description: strings.Join(args[1:], " "),
		Duration:    minutes,
	}
	entry, err := a.api.CreateEntry(ctx, in)
	if err != nil {
		return err
	}
	a.println(successStyle.Render("Added " + timex.FormatDuration(entry.Duration) + " to " + entry.Label()))
	return nil
}

// Export writes the CSV export of all entries to a local file.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: export <file>")
		return errUsage
	}
	err := filex.WriteWith(args[0], 0o644, func(w io.Writer) error {
		return a.api.ExportCSV(ctx, models.EntryQuery{}, w)
	})
	if err != nil {
		return err
	}
	a.println(successStyle.Render("Exported to " + args[0]))
	return nil
}

// Publish uploads the CSV export to object storage and prints its download
// link; with a file argument the published copy is downloaded as well.
func (a *App) Publish(ctx context.Context, args []string) error {
	if len(args) > 1 {
		a.println("Usage: publish [file]")
		return errUsage
	}
	exp, err := a.api.PublishExport(ctx, models.EntryQuery{})
	if err != nil {
		return err
	}
	a.println(successStyle.Render("Published " + exp.Key))
	a.println(exp.URL)

	if len(args) == 0 {
		return nil
	}
	err = filex.WriteWith(args[0], 0o644, func(w io.Writer) error {
		_, err := downloadFn(ctx, exp.URL, w)
		return err
	})
	if err != nil {
		return err
	}
	a.println("Downloaded to " + args[0])
	return nil
}

// Settings shows the pomodoro targets, or stores new ones:
// settings [work break].
func (a *App) Settings(ctx context.Context, args []string) error {
	var (
		s   *models.Settings
		err error
	)
	switch len(args) {
	case 0:
		s, err = a.ctrl.LoadSettings(ctx)
	case 2:
		work, werr := strconv.Atoi(args[0])
		brk, berr := strconv.Atoi(args[1])
		if werr != nil || berr != nil {
			a.println("Usage: settings [work break]")
			return errUsage
		}
		s, err = a.ctrl.SaveSettings(ctx, work, brk)
	default:
		a.println("Usage: settings [work break]")
		return errUsage
	}
	if err != nil {
		return err
	}
	a.printf("Work %d min, break %d min\n", s.WorkDuration, s.BreakDuration)
	return nil
}
