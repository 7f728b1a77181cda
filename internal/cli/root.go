// Package cli contains the sitesearch commands
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sitesearch/internal/config"
	"sitesearch/internal/eventbus"
	"sitesearch/internal/index"
	"sitesearch/internal/search"
	"sitesearch/internal/ui"
	"sitesearch/internal/ui/views"
)

// options holds the global flags and the state derived from them
type options struct {
	cfgFile   string
	index     string
	baseURL   string
	logFile   string
	startOpen bool
	colorMode string

	configSvc config.ConfigService
	cfg       *config.Config
	closeLog  func()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   "sitesearch",
		Short: "Search a static site's index from the terminal",
		Long: `sitesearch opens a search overlay over a site's pre-built index.json.

The index is fetched the first time the overlay opens. Type to filter pages by
title or summary, move with the arrow keys and press enter to open a result.

Example usage:
  sitesearch --index https://example.com/index.json
  sitesearch --base-url https://example.com --open
  sitesearch query hello world
  sitesearch config init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.init(cmd)
		},
		RunE: o.run(func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), o)
		}),
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "", "config file (default is ./"+config.FileName+" or the user config directory)")
	flags.StringVar(&o.index, "index", "", "index.json path or URL")
	flags.StringVar(&o.baseURL, "base-url", "", "site root used for relative index paths and result links")
	flags.StringVar(&o.logFile, "log-file", "", "log file (default sitesearch.log)")
	flags.StringVar(&o.colorMode, "color", "auto", "color output: auto, always or never")
	rootCmd.Flags().BoolVar(&o.startOpen, "open", false, "start with the search overlay open")

	rootCmd.AddCommand(newQueryCmd(o))
	rootCmd.AddCommand(newConfigCmd(o))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// init loads the configuration, applies flag overrides and sets up logging
func (o *options) init(cmd *cobra.Command) error {
	mode, err := ParseColorMode(o.colorMode)
	if err != nil {
		return err
	}
	applyColorMode(mode)

	o.configSvc = resolveConfigService(o.cfgFile)
	o.cfg = loadOrCreateConfig(o.configSvc)

	if cmd.Flags().Changed("index") {
		o.cfg.Index = o.index
	}
	if cmd.Flags().Changed("base-url") {
		o.cfg.BaseURL = o.baseURL
	}
	if cmd.Flags().Changed("log-file") {
		o.cfg.LogFile = o.logFile
	}
	if o.startOpen {
		o.cfg.UISettings.StartOpen = true
	}

	// One-shot commands only log when asked to
	if cmd != cmd.Root() && !cmd.Flags().Changed("log-file") {
		o.closeLog = discardLogging()
	} else {
		o.closeLog = setupLogging(o.cfg.LogFile)
	}
	log.Printf("Using config %s, index %s", o.configSvc.Path(), o.cfg.IndexLocation())
	return nil
}

// run wraps a command body so logging is torn down on every exit path
func (o *options) run(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer o.close()
		return fn(cmd, args)
	}
}

func (o *options) close() {
	if o.closeLog != nil {
		o.closeLog()
		o.closeLog = nil
	}
}

// resolveConfigService prefers an explicit file, then one in the working
// directory, then the user config directory
func resolveConfigService(path string) config.ConfigService {
	if path != "" {
		return config.NewConfigServiceAt(path)
	}
	if _, err := os.Stat(config.FileName); err == nil {
		return config.NewConfigServiceAt(config.FileName)
	}
	return config.NewConfigService()
}

// loadOrCreateConfig loads the configuration, falling back to defaults
func loadOrCreateConfig(svc config.ConfigService) *config.Config {
	cfg, err := svc.Load()
	if err != nil {
		log.Printf("Failed to load config %s, using defaults: %v", svc.Path(), err)
		return config.DefaultConfig()
	}
	return cfg
}

// setupLogging sends the standard logger to path. The returned func restores
// stderr logging and closes the file.
func setupLogging(path string) func() {
	if path == "" {
		return func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(os.Stderr)
		_ = logFile.Close()
	}
}

func discardLogging() func() {
	log.SetOutput(io.Discard)
	return func() {
		log.SetOutput(os.Stderr)
	}
}

// subscribeLogging writes every domain event to the log
func subscribeLogging(bus eventbus.EventBus) {
	logEvent := func(e eventbus.DomainEvent) {
		log.Printf("Event %s: %+v", e.Type(), e)
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventIndexLoaded,
		eventbus.EventIndexFailed,
		eventbus.EventOverlayOpened,
		eventbus.EventOverlayClosed,
		eventbus.EventResultActivated,
	} {
		bus.Subscribe(t, logEvent)
	}
}

// newController wires a search controller to the configured index
func newController(cfg *config.Config, bus eventbus.EventBus) *search.Controller {
	store := index.NewStore(index.NewSource(cfg.IndexLocation()), bus)
	return search.NewController(search.Options{
		Store:        store,
		Bus:          bus,
		Limit:        cfg.Search.Limit,
		SummaryLimit: cfg.Search.SummaryLimit,
		FocusDelay:   cfg.FocusDelay(),
		CloseDelay:   cfg.CloseDelay(),
		Icons:        cfg.Icons(),
		Clean:        views.StripTags,
	})
}

func runTUI(parent context.Context, o *options) error {
	if parent == nil {
		parent = context.Background()
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	ctrl := newController(o.cfg, bus)
	model := ui.NewModel(ctx, o.cfg, ctrl)

	log.Printf("Creating Bubble Tea program...")
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	stopSignals := watchActivationSignals(ui.NewProgramActivator(p))
	defer stopSignals()

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	log.Printf("UI exited")
	return nil
}

// isNotExist reports whether err means a file is missing
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
