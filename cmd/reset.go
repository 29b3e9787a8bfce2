package cmd

import (
	"context"
	"fmt"
	"time"

	"newsverify/internal/redisclient"
	"newsverify/internal/storage"
	"newsverify/internal/store"

	"github.com/spf13/cobra"
)

var resetKeepNews bool

// resetCmd rebuilds the demo dataset and persists the result.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the demo data (seed corpus, votes, likes, engagement)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		st := store.New(store.Options{
			Snapshots: storage.NewSnapshots(storage.NewRedisKV(rdb)),
			SeedTotal: cfg.Seed.Total,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		st.Init(ctx)
		st.ResetMockData(ctx, store.ResetOptions{RegenerateNews: !resetKeepNews})

		fmt.Fprintf(cmd.OutOrStdout(), "Reset done: %d news items, %d votes.\n", len(st.News()), len(st.Votes()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetKeepNews, "keep-news", false, "keep existing news items, only rebuild votes/likes/engagement")
}
