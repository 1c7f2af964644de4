package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/charset"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/service"
	"github.com/vaultpass/passgen/internal/ui"
)

// cli carries what every subcommand shares.
type cli struct {
	cfg config.Config
	src charset.Source
	run func(ui.Generator)
}

func newRootCmd(cfg config.Config) *cobra.Command {
	return newCLI(cfg, nil, ui.Run).command()
}

func newCLI(cfg config.Config, src charset.Source, run func(ui.Generator)) *cli {
	return &cli{cfg: cfg, src: src, run: run}
}

func (c *cli) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords from selected character classes",
		Long: `passgen opens a small window to pick character classes and a length,
generate a password and copy it to the clipboard.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.service(cmd.Context())
			c.run(svc)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.cfg.CharsetDSN, "dsn", c.cfg.CharsetDSN,
		"MySQL DSN holding the character class tables (built-in classes when empty)")

	root.AddCommand(c.generateCommand(), c.serveCommand())
	return root
}

// service builds the generator over the class table, loaded once.
func (c *cli) service(ctx context.Context) *service.GeneratorService {
	return service.NewGeneratorService(loadTable(ctx, c.cfg.CharsetDSN), c.src)
}

// loadTable reads the class table from the database when dsn is set, and
// falls back to the built-in table on any failure.
func loadTable(ctx context.Context, dsn string) *charset.Table {
	if dsn == "" {
		return charset.Builtin()
	}

	db, err := repository.NewDB(ctx, dsn)
	if err != nil {
		slog.Warn("database connection failed, using built-in character classes", "error", err)
		return charset.Builtin()
	}
	defer db.Close()

	table, err := repository.NewCharsetRepository(db).LoadTable(ctx)
	if err != nil {
		slog.Warn("loading character classes failed, using built-in character classes", "error", err)
		return charset.Builtin()
	}

	slog.Info("character classes loaded from database")
	return table
}
