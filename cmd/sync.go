package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"meeting-sync/core/config"
	"meeting-sync/core/logger"
	"meeting-sync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs a single sync pass and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one Calendly sync pass",
	Long: `Pulls the authenticated user's scheduled events from Calendly and upserts
them into the local database. Exits non-zero if the pass fails fatally.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")

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

		report, err := rt.slot.Run(ctx, reconcile.TriggerManual)

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(report); encErr != nil {
				return fmt.Errorf("failed to encode report: %w", encErr)
			}
		} else {
			l.Info("Sync report",
				zap.String("run_id", report.RunID),
				zap.Int("processed", report.Result.Processed),
				zap.Int("skipped", report.Result.Skipped),
				zap.Int("failed", report.Result.Failed),
				zap.Duration("duration", report.Duration()),
			)
		}

		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().Bool("json", false, "Print the sync report as JSON")
	RootCmd.AddCommand(syncCmd)
}
