package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/reclip-dev/reclip/config"
	"github.com/reclip-dev/reclip/export"
	"github.com/reclip-dev/reclip/internal/models"
	"github.com/reclip-dev/reclip/internal/playback"
	"github.com/reclip-dev/reclip/internal/timeline"
	"github.com/reclip-dev/reclip/internal/timeutil"
	"github.com/reclip-dev/reclip/internal/ui"
	"github.com/reclip-dev/reclip/record"
	"github.com/reclip-dev/reclip/store"
)

const (
	envNoColor       = "NO_COLOR"
	envReclipNoColor = "RECLIP_NO_COLOR"
)

var (
	errNoProject = errors.New(
		"a project name is required",
	)
	errUnknownDuration = errors.New(
		"the media duration is unknown: provide it with --duration",
	)
)

func appConfig(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

func projectArg(ctx *cli.Context) (string, error) {
	name := ctx.Args().First()
	if name == "" {
		return "", errNoProject
	}

	return name, nil
}

// editProject loads a project, routes its segments through a fresh engine,
// applies fn, and saves the result.
func editProject(
	name string,
	fn func(p *models.Project, e *timeline.Engine),
) (*models.Project, error) {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = db.Close()
	}()

	p, err := db.GetProject(name)
	if err != nil {
		return nil, err
	}

	e := timeline.New()
	e.ReplaceSegments(p.Segments)

	fn(p, e)

	p.Segments = e.Segments()

	return p, db.SaveProject(p)
}

// defaultAction opens the interactive review session for a project,
// creating the project first if it does not exist yet.
func defaultAction(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return cli.ShowAppHelp(ctx)
	}

	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	p, err := db.GetProject(name)
	if errors.Is(err, store.ErrProjectNotFound) {
		p = &models.Project{Name: name}
	} else if err != nil {
		return err
	}

	if media := ctx.String("media"); media != "" {
		p.MediaPath = media
	}

	duration := p.Duration

	if d := ctx.String("duration"); d != "" {
		duration, err = timeutil.ParseTimestamp(d)
		if err != nil {
			return err
		}

		p.Duration = duration
	}

	if duration <= 0 {
		return errUnknownDuration
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.Info(
		"starting review session",
		slog.String("project", name),
		slog.Float64("duration", duration),
	)

	player := playback.NewClock(duration, cfg.Playback.Rate)

	r := record.New(db, cfg, p, player)

	if _, err := tea.NewProgram(r).Run(); err != nil {
		return err
	}

	return r.Err()
}

// listAction prints all saved projects.
func listAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	projects, err := db.ListProjects()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.MarshalIndent(projects, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, string(b))

		return nil
	}

	return listProjects(projects)
}

// showAction prints the timeline of a single project.
func showAction(ctx *cli.Context) error {
	name, err := projectArg(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	p, err := db.GetProject(name)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.MarshalIndent(p.Segments, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, string(b))

		return nil
	}

	printSegmentsTable(os.Stdout, p.Segments)

	pterm.Printfln(
		"kept %s of %s",
		ui.Green(timeutil.FormatSeconds(export.KeptDuration(p.Segments))),
		ui.Highlight(timeutil.FormatSeconds(p.Duration)),
	)

	return nil
}

// toggleAction flips a single segment between kept and skipped.
func toggleAction(ctx *cli.Context) error {
	name, err := projectArg(ctx)
	if err != nil {
		return err
	}

	id := ctx.Int("id")

	p, err := editProject(name, func(_ *models.Project, e *timeline.Engine) {
		e.ToggleSegment(id)
	})
	if err != nil {
		return err
	}

	printSegmentsTable(os.Stdout, p.Segments)

	return nil
}

// splitAction splits the segment containing the given timestamp.
func splitAction(ctx *cli.Context) error {
	name, err := projectArg(ctx)
	if err != nil {
		return err
	}

	at, err := timeutil.ParseTimestamp(ctx.String("at"))
	if err != nil {
		return err
	}

	p, err := editProject(name, func(_ *models.Project, e *timeline.Engine) {
		e.SplitSegment(at)
	})
	if err != nil {
		return err
	}

	printSegmentsTable(os.Stdout, p.Segments)

	return nil
}

// finalizeAction caps a project's timeline at the true media duration.
func finalizeAction(ctx *cli.Context) error {
	name, err := projectArg(ctx)
	if err != nil {
		return err
	}

	var duration float64

	if d := ctx.String("duration"); d != "" {
		duration, err = timeutil.ParseTimestamp(d)
		if err != nil {
			return err
		}
	}

	p, err := editProject(name, func(p *models.Project, e *timeline.Engine) {
		if duration <= 0 {
			duration = p.Duration
		}

		if duration <= 0 {
			return
		}

		e.FinalizeSegments(duration)

		p.Duration = duration
		p.Finalized = true
	})
	if err != nil {
		return err
	}

	if !p.Finalized {
		return errUnknownDuration
	}

	printSegmentsTable(os.Stdout, p.Segments)

	return nil
}

// exportAction splices the kept ranges of one or more projects into output
// files.
func exportAction(ctx *cli.Context) error {
	names := ctx.Args().Slice()
	if len(names) == 0 {
		return errNoProject
	}

	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	jobs := make([]export.Job, 0, len(names))

	for _, name := range names {
		p, err := db.GetProject(name)
		if err != nil {
			return err
		}

		output := ctx.String("output")
		if output == "" || len(names) > 1 {
			output = export.DefaultOutputPath(p.MediaPath, cfg.Export.Format)
		}

		jobs = append(jobs, export.Job{Project: p, Output: output})
	}

	if ctx.Bool("dry-run") {
		printExportPlan(jobs)
		return nil
	}

	exporter := export.New(cfg.Export.FFmpegPath, cfg.Export.Concurrency)

	if err := exporter.Run(ctx.Context, jobs); err != nil {
		return err
	}

	for _, job := range jobs {
		pterm.Success.Printfln("%s -> %s", job.Project.Name, job.Output)
	}

	return nil
}

// deleteAction permanently removes one or more projects. It requests
// confirmation before proceeding unless --yes is given.
func deleteAction(ctx *cli.Context) error {
	names := ctx.Args().Slice()
	if len(names) == 0 {
		return errNoProject
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	if !ctx.Bool("yes") {
		var confirmed bool

		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %d project(s) permanently?", len(names))).
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}

		if !confirmed {
			return nil
		}
	}

	if err := db.DeleteProjects(names); err != nil {
		return err
	}

	pterm.Success.Printfln("deleted: %v", names)

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	config.InitializePaths()

	initLogger()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if RECLIP_NO_COLOR is set
	if _, exists := os.LookupEnv(envReclipNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting reclip")

	return nil
}
