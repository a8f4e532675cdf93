// Package cli wires configuration, logging and the exercise services into
// the coursework command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"coursework/internal/config"
	"coursework/internal/logging"
	"coursework/internal/service"
)

const eventBuffer = 256

// app carries the state shared by every subcommand. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	cfg        *config.Config
	configPath string
	log        zerolog.Logger
	events     *service.EventBus
	sink       chan service.Event
}

type rootOptions struct {
	configPath string
	logLevel   string
	dataDir    string
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	cmd := &cobra.Command{
		Use:          "coursework",
		Short:        "Typed repositories and the exercises built on them",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, opts)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.drainEvents()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: search $"+config.EnvConfigPath+", ./"+config.ConfigFileName+", XDG)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "override the data directory")

	cmd.AddCommand(
		gradesCmd(a),
		inventoryCmd(a),
		ledgerCmd(a),
		healthCmd(a),
		warehouseCmd(a),
		configCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if opts.configPath != "" {
		cfg, path, err = config.LoadFromPath(opts.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return err
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.dataDir != "" {
		cfg.Data.Dir = opts.dataDir
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.configPath = path
	a.log = log
	a.events = service.NewEventBus()
	a.sink = make(chan service.Event, eventBuffer)
	a.events.Subscribe(a.sink)

	if path != "" {
		log.Debug().Str("path", path).Msg("config loaded")
	} else {
		log.Debug().Msg("no config file found, using defaults")
	}
	return nil
}

// drainEvents logs whatever the services published during the command
func (a *app) drainEvents() {
	if a.sink == nil {
		return
	}
	for {
		select {
		case ev := <-a.sink:
			a.log.Debug().
				Str("event", string(ev.Type)).
				Str("collection", ev.Collection).
				Int("id", ev.EntityID).
				Interface("payload", ev.Payload).
				Msg("event")
		default:
			return
		}
	}
}

// storeContext bounds a persistence operation by the configured timeout
func (a *app) storeContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.cfg.StoreTimeout())
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
