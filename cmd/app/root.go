package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/kitchendeck/internal/config"
	"github.com/akyairhashvil/kitchendeck/internal/database"
	"github.com/akyairhashvil/kitchendeck/internal/session"
	"github.com/akyairhashvil/kitchendeck/internal/tui"
	"github.com/akyairhashvil/kitchendeck/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("the interactive view needs a terminal; try the timer subcommand")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

type rootOptions struct {
	dataDir    string
	configPath string
	verbose    bool

	env *appEnv
}

// appEnv is everything a subcommand needs, opened once in PersistentPreRunE.
type appEnv struct {
	dataDir string
	config  *config.Config
	db      *database.Database
	logger  *zap.Logger
}

func (e *appEnv) Close() error {
	if e == nil {
		return nil
	}
	_ = e.logger.Sync()
	return e.db.Close()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Recipe timer and image gallery for the terminal",
		Version:       tui.VersionLabel(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			opts.env = env
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			err := opts.env.Close()
			opts.env = nil
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), opts.env)
		},
	}

	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "data directory (default $XDG_DATA_HOME/"+config.AppName+")")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <data-dir>/"+config.ConfigFileName+")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(timerCmd(opts), statusCmd(opts), resetCmd(opts))
	return root
}

func (o *rootOptions) open(ctx context.Context) (*appEnv, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	dir := o.dataDir
	if dir == "" {
		dir = util.DataDir(config.AppName)
	}
	dir, err := util.EnsureDir(util.ExpandHome(dir))
	if err != nil {
		return nil, err
	}

	logger, err := util.NewLogger(filepath.Join(dir, config.LogFileName), o.verbose)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)

	cfgPath := o.configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(dir, config.ConfigFileName)
	}
	mgr, err := config.NewManager(util.ExpandHome(cfgPath))
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, filepath.Join(dir, config.DBFileName))
	if err != nil {
		return nil, err
	}
	logger.Debug("environment ready",
		zap.String("data_dir", dir),
		zap.String("config", mgr.Path()),
		zap.String("db", db.Path()))
	return &appEnv{dataDir: dir, config: mgr.Config(), db: db, logger: logger}, nil
}

func runInteractive(ctx context.Context, env *appEnv) error {
	if !isTerminal() {
		return errNotTerminal
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := env.config
	timerTicks := tui.NewTicker("timer", config.TickInterval)
	autoTicks := tui.NewTicker("autoplay", cfg.Carousel.AutoplayEvery)
	sess, err := session.New(ctx, session.Options{
		Config:         cfg,
		Store:          env.db,
		Logger:         env.logger,
		TimerTicker:    timerTicks,
		AutoplayTicker: autoTicks,
		Restore:        true,
	})
	if err != nil {
		return err
	}

	model := tui.NewModel(ctx, sess, cfg, timerTicks, autoTicks)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		// The model saves on q; a killed program still gets a final save.
		util.LogError("save session", sess.Suspend(context.Background()))
		return err
	}
	return nil
}
