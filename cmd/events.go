package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"meeting-sync/core/config"
	"meeting-sync/core/logger"
	"meeting-sync/feature/meetings"
	"meeting-sync/feature/meetings/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// eventsCmd prints stored meetings.
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List stored meetings",
	Long: `Prints every stored meeting as JSON, latest start first.
With --today only today's active meetings are printed, earliest first.
With --ics today's active meetings are printed as an iCalendar document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		today, _ := cmd.Flags().GetBool("today")
		asICS, _ := cmd.Flags().GetBool("ics")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		db, store, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeDB(db)

		svc := meetings.NewService(store, cfg.Query.Location(), l)

		var events []models.CalendarEvent
		if today || asICS {
			events, err = svc.GetTodayActiveMeetings(ctx)
		} else {
			events, err = svc.GetAllEvents(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}
		l.Debug("Loaded events", zap.Int("count", len(events)), zap.String("today", svc.Today()))

		if asICS {
			_, err := fmt.Fprint(os.Stdout, meetings.BuildCalendar(events, time.Now()))
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	},
}

func init() {
	eventsCmd.Flags().Bool("today", false, "Only today's active meetings")
	eventsCmd.Flags().Bool("ics", false, "Print today's active meetings as iCalendar")
	RootCmd.AddCommand(eventsCmd)
}
