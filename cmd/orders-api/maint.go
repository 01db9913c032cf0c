package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MikeMC777/stencil-orders/internal/report"
)

var checkDBCmd = &cobra.Command{
	Use:   "check-db",
	Short: "Run SELECT 1 against DATABASE_URL and exit non-zero on failure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReports(cmd.Context(), func(ctx context.Context, r report.Repository) error {
			ok, err := r.Ping(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("db check returned no row")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "db ok")
			return nil
		})
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh-weekly-mv",
	Short: "Refresh weekly_order_tracking_mv (for cron)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReports(cmd.Context(), func(ctx context.Context, r report.Repository) error {
			if err := r.RefreshWeekly(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "weekly_order_tracking_mv refreshed")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(checkDBCmd, refreshCmd)
}

func withReports(ctx context.Context, fn func(context.Context, report.Repository) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, log, tp, pool, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() {
		pool.Close()
		_ = tp.Shutdown(context.Background())
	}()

	if err := fn(ctx, report.NewPGRepo(pool, cfg.QueryTimeout)); err != nil {
		log.Error("command failed", "error", err)
		return err
	}
	return nil
}
