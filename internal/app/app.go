package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"finfo/internal/config"
	"finfo/internal/finfo"
	osfs "finfo/internal/fs"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// App is the application layer between the CLI and the ListService.
// It constructs all collaborators from config and manages the log file
// lifecycle on Close.
type App struct {
	cfg     *config.Config
	fsys    finfo.Filesystem
	service *finfo.ListService
	logFile *os.File
}

// LoadConfig reads the config file from its default location. A missing
// config file is not an error: the tool must work without `config init`
// ever having been run, so defaults are returned instead.
func LoadConfig() (*config.Config, error) {
	defaults, err := GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.NewConfig("", defaults["base_dir"]), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// NewApp creates a fully wired App from the given config.
// operation identifies the CLI command being run (e.g. "List").
// The caller must call Close when done.
func NewApp(cfg *config.Config, operation string) (*App, error) {
	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger = logger.With("operation", operation)
	if cfg.HostID != "" {
		logger = logger.With("host_id", cfg.HostID)
	}

	color := colorEnabled(cfg.Output.Color)
	if cfg.Output.Color == "always" {
		// lipgloss downgrades to plain text on non-terminal writers unless a
		// profile is forced.
		lipgloss.SetColorProfile(termenv.ANSI)
	}

	fsys := osfs.NewOSFilesystem()
	renderer := finfo.NewRenderer(os.Stdout, finfo.NewStyles(color))
	svc := finfo.NewListService(fsys, renderer, &slogAdapter{l: logger})

	return &App{
		cfg:     cfg,
		fsys:    fsys,
		service: svc,
		logFile: logFile,
	}, nil
}

// colorEnabled maps the config color mode to a concrete on/off decision.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// List builds the path collection from raw arguments, sorts it, and runs the
// traversal. With no arguments the current directory is listed.
func (a *App) List(paths []string, recursive bool) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	list := finfo.NewPathList(a.fsys)
	for _, p := range paths {
		if err := list.Add(p); err != nil {
			return fmt.Errorf("adding path %s: %w", p, err)
		}
	}
	list.Sort()

	a.service.Run(list, finfo.Options{Recursive: recursive})
	return nil
}

// Close releases the log file. A failure here is surfaced to the caller,
// which treats it as fatal.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	if err := a.logFile.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}
