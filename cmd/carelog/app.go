package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/c360studio/carelog/commands"
	"github.com/c360studio/carelog/config"
	"github.com/c360studio/carelog/model"
	"github.com/c360studio/carelog/model/person"
	"github.com/c360studio/carelog/parser"
	"github.com/c360studio/carelog/storage"
)

// App wires the parser, model and storage into the interactive session.
type App struct {
	logger    *slog.Logger
	sessionID string
	manager   *model.Manager
	parser    *parser.RecordParser
	store     *storage.FileStorage
	watcher   *storage.Watcher
	saving    atomic.Bool
	in        io.Reader
	out       io.Writer
}

func run(prefsPath, dataPath, logLevel string) error {
	logger := newLogger(logLevel)
	slog.SetDefault(logger)

	prefs, err := loadPrefs(prefsPath, logger)
	if err != nil {
		return err
	}
	if dataPath != "" {
		prefs.Records.Path = dataPath
	}
	if logLevel != "" {
		prefs.Log.Level = logLevel
	}

	app, err := newApp(prefs, logger, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer app.Close()
	return app.Run()
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func loadPrefs(prefsPath string, logger *slog.Logger) (*config.Prefs, error) {
	if prefsPath != "" {
		prefs, err := config.LoadFromFile(prefsPath)
		if err != nil {
			return nil, err
		}
		if err := prefs.Validate(); err != nil {
			return nil, err
		}
		return prefs, nil
	}
	return config.NewLoader(logger).Load()
}

// newApp loads the persisted books and builds the session. A corrupt record
// file is reported and the session starts with empty books; the file is not
// overwritten until the first successful command.
func newApp(prefs *config.Prefs, logger *slog.Logger, in io.Reader, out io.Writer) (*App, error) {
	store := storage.NewFileStorage(prefs.Records.Path, logger)
	active, archived, err := store.Load()
	if err != nil {
		logger.Warn("failed to load record file, starting empty", slog.String("error", err.Error()))
		active, archived = model.NewRecordBook(), model.NewRecordBook()
	}

	app := &App{
		logger:    logger,
		sessionID: uuid.New().String(),
		manager:   model.NewManager(active, archived, prefs, logger),
		parser:    parser.NewRecordParser(),
		store:     store,
		in:        in,
		out:       out,
	}

	watcher, err := storage.NewWatcher(store.Path(), logger, func() {
		if app.saving.Load() {
			return
		}
		logger.Warn("record file modified outside this session; changes on disk will be overwritten on next save")
	})
	if err != nil {
		logger.Debug("file watcher unavailable", slog.String("error", err.Error()))
	} else {
		app.watcher = watcher
	}

	logger.Info("session started",
		slog.String("session_id", app.sessionID),
		slog.String("records", store.Path()),
		slog.Int("active", active.Len()),
		slog.Int("archived", archived.Len()))
	return app, nil
}

// Run reads command lines until exit or EOF. The books are saved after every
// successful command and once more on the way out.
func (a *App) Run() error {
	fmt.Fprintf(a.out, "Welcome to %s. Type \"help\" for the command reference.\n", appName)

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if exit := a.execute(line); exit {
			return scanner.Err()
		}
	}
	if err := a.save(); err != nil {
		a.logger.Error("failed to save records on exit", slog.String("error", err.Error()))
	}
	return scanner.Err()
}

// execute runs one command line through the parse/execute pipeline and
// reports whether the session should end.
func (a *App) execute(line string) bool {
	cmd, err := a.parser.Parse(line)
	if err != nil {
		fmt.Fprintln(a.out, errorMessage(err))
		return false
	}

	result, err := cmd.Execute(a.manager)
	if err != nil {
		fmt.Fprintln(a.out, errorMessage(err))
		return false
	}

	fmt.Fprintln(a.out, result.Message)
	a.printView()
	if err := a.save(); err != nil {
		a.logger.Error("failed to save records", slog.String("error", err.Error()))
		fmt.Fprintln(a.out, "Warning: records could not be saved to disk.")
	}
	return result.Exit
}

// printView renders the current filtered view under the command feedback.
func (a *App) printView() {
	persons := a.manager.FilteredPersons()
	verbose := a.manager.Prefs().Display.Verbose
	for i, p := range persons {
		if verbose {
			fmt.Fprintf(a.out, "%d. %s\n", i+1, p)
		} else {
			fmt.Fprintf(a.out, "%d. %s (%s)\n", i+1, p.Name(), p.Phone())
		}
	}
}

func (a *App) save() error {
	a.saving.Store(true)
	defer a.saving.Store(false)
	return a.store.Save(a.manager.ActiveBook(), a.manager.ArchivedBook())
}

// Close releases the file watcher.
func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.logger.Debug("failed to close file watcher", slog.String("error", err.Error()))
		}
	}
}

// errorMessage extracts the user-facing text from a pipeline error. Field
// constraint violations show only the fixed constraint message; everything
// else already carries its fixed text.
func errorMessage(err error) string {
	var validationErr *person.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Message
	}
	var cmdErr *commands.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Message
	}
	return err.Error()
}
