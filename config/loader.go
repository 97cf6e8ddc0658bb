package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectPrefsFile is the name of the directory-level preferences file
	ProjectPrefsFile = "carelog.yaml"
	// UserPrefsDir is the directory for user-level preferences
	UserPrefsDir = ".config/carelog"
	// UserPrefsFile is the name of the user-level preferences file
	UserPrefsFile = "config.yaml"
)

// Loader handles preference loading with layered precedence
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new preference loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads preferences with layered precedence:
// 1. Default preferences
// 2. User preferences (~/.config/carelog/config.yaml)
// 3. Directory preferences (carelog.yaml in current or parent directories)
func (l *Loader) Load() (*Prefs, error) {
	prefs := DefaultPrefs()

	userPath := l.userPrefsPath()
	if userPrefs, err := LoadFromFile(userPath); err == nil {
		l.logger.Debug("loaded user preferences", slog.String("path", userPath))
		prefs.Merge(userPrefs)
	} else if !errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("failed to load user preferences", slog.String("path", userPath), slog.String("error", err.Error()))
	}

	projectPath := l.findProjectPrefs()
	if projectPath != "" {
		if projectPrefs, err := LoadFromFile(projectPath); err == nil {
			l.logger.Debug("loaded directory preferences", slog.String("path", projectPath))
			prefs.Merge(projectPrefs)
		} else {
			l.logger.Warn("failed to load directory preferences", slog.String("path", projectPath), slog.String("error", err.Error()))
		}
	}

	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	return prefs, nil
}

// userPrefsPath returns the path to the user-level preferences file.
func (l *Loader) userPrefsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserPrefsDir, UserPrefsFile)
}

// findProjectPrefs walks up from the working directory looking for
// carelog.yaml. Returns "" if none is found.
func (l *Loader) findProjectPrefs() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ProjectPrefsFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
