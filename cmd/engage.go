package cmd

import (
	"context"
	"fmt"
	"time"

	"newsverify/internal/engage"
	"newsverify/internal/redisclient"
	"newsverify/internal/storage"
	"newsverify/internal/store"

	"github.com/spf13/cobra"
)

var engageBoostOnly bool

// engageCmd adds another round of synthetic engagement on top of the
// current dataset, using the configured bounds.
var engageCmd = &cobra.Command{
	Use:   "engage",
	Short: "Add synthetic likes, votes and comments to the current dataset",
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

		st.BoostSeedVotes(ctx, cfg.Seed.BoostMin, cfg.Seed.BoostMax)
		if !engageBoostOnly {
			st.RandomizeEngagement(ctx, engage.Options{
				LikeMin:     cfg.Seed.LikeMin,
				LikeMax:     cfg.Seed.LikeMax,
				VoteMin:     cfg.Seed.VoteMin,
				VoteMax:     cfg.Seed.VoteMax,
				CommentRate: cfg.Seed.CommentRate,
				ImageRate:   cfg.Seed.ImageRate,
			})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Engagement added: %d news items, %d votes.\n", len(st.News()), len(st.Votes()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(engageCmd)
	engageCmd.Flags().BoolVar(&engageBoostOnly, "boost-only", false, "only top up seed vote counts, skip likes and comments")
}
