package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"meeting-sync/core/config"
	"meeting-sync/core/logger"
	"meeting-sync/feature/integrity"

	"github.com/spf13/cobra"
)

// integrityCmd runs the operational checks and prints a combined report.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check database schema, report storage and the Calendly credential",
	Long: `Runs every integrity check and prints the combined report as JSON.
With --fix the events table is migrated and the report bucket created when missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		fix, _ := cmd.Flags().GetBool("fix")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		rt, err := newRuntime(ctx, cfg, l)
		if err != nil {
			return err
		}
		defer rt.Close()

		svc := integrity.NewService(rt.integrityOptions(cfg.Storage), l)
		if fix {
			if err := svc.FixSchema(ctx); err != nil {
				return fmt.Errorf("failed to migrate schema: %w", err)
			}
			if cfg.Storage.Enabled {
				if err := svc.FixStorage(ctx); err != nil {
					return fmt.Errorf("failed to create report bucket: %w", err)
				}
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(svc.CheckAll(ctx))
	},
}

func init() {
	integrityCmd.Flags().Bool("fix", false, "Migrate the schema and create the report bucket")
	RootCmd.AddCommand(integrityCmd)
}
