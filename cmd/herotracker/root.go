package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/heroquest-tracker/internal/config"
)

type rootOptions struct {
	envFile    string
	backend    string
	redisAddr  string
	sqlitePath string
	stateKey   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "herotracker",
		Short: "Track HeroQuest heroes",
		Long: `herotracker keeps a party of HeroQuest heroes: points, equipment, spells,
gold, inventory and quest progress. Run "herotracker shell" for an interactive
session with undo and redo. Amounts starting with a minus sign follow "--",
as in "herotracker gold -- -25".

Settings are read from the environment (and a .env file):
  ` + strings.Join(config.Environ(), "\n  "),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "env file to read before the environment")
	flags.StringVar(&opts.backend, "backend", "", "storage backend: sqlite or redis")
	flags.StringVar(&opts.redisAddr, "redis-addr", "", "redis address (host:port)")
	flags.StringVar(&opts.sqlitePath, "sqlite-path", "", "sqlite database file")
	flags.StringVar(&opts.stateKey, "state-key", "", "key the roster is stored under")

	for _, a := range actions() {
		if a.shellOnly {
			continue
		}
		root.AddCommand(newActionCmd(opts, a))
	}
	root.AddCommand(newShellCmd(opts))

	return root
}

// apply overrides cfg with the flags set on cmd
func (o *rootOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = config.Backend(strings.ToLower(o.backend))
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = o.redisAddr
	}
	if flags.Changed("sqlite-path") {
		cfg.SQLitePath = o.sqlitePath
	}
	if flags.Changed("state-key") {
		cfg.StateKey = o.stateKey
	}
}

func newActionCmd(opts *rootOptions, a action) *cobra.Command {
	use := a.name
	if a.usage != "" {
		use += " " + a.usage
	}

	return &cobra.Command{
		Use:   use,
		Short: a.short,
		Args:  a.argsValidator(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.offline {
				return a.run(cmd.Context(), newOfflineApp(cmd.OutOrStdout()), args)
			}
			return withApp(cmd, opts, func(ctx context.Context, ap *app) error {
				return a.run(ctx, ap, args)
			})
		},
	}
}

func (a action) argsValidator() cobra.PositionalArgs {
	if a.maxArgs < 0 {
		return cobra.MinimumNArgs(a.minArgs)
	}
	return cobra.RangeArgs(a.minArgs, a.maxArgs)
}

// withApp opens storage, runs fn and saves whatever fn changed
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, ap *app) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ap, err := openApp(ctx, cmd, opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ap.Close(ctx); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := fn(ctx, ap); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	return nil
}
