package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"newsverify/internal/ai"
	"newsverify/internal/feed"
	"newsverify/internal/redisclient"
	"newsverify/internal/storage"
	"newsverify/internal/store"

	"github.com/spf13/cobra"
)

var importFile string

// importCmd ingests external articles into the store as imported news.
var importCmd = &cobra.Command{
	Use:   "import [feed-url]",
	Short: "Import articles from an RSS/Atom feed or a YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		url := cfg.Import.FeedURL
		if len(args) == 1 {
			url = args[0]
		}
		fromFile := strings.TrimSpace(importFile) != ""
		if !fromFile && url == "" {
			return fmt.Errorf("no feed url given: pass one as an argument, set import.feed_url, or use --file")
		}

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		st := store.New(store.Options{
			Snapshots: storage.NewSnapshots(storage.NewRedisKV(rdb)),
			SeedTotal: cfg.Seed.Total,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		st.Init(ctx)

		var summarizer ai.Summarizer
		if cfg.OpenAI.APIKey != "" {
			summarizer = ai.NewOpenAI(ai.Config{APIKey: cfg.OpenAI.APIKey, Model: cfg.OpenAI.Model, BaseURL: cfg.OpenAI.BaseURL})
		}

		var count int
		if fromFile {
			items, err := feed.LoadFile(importFile)
			if err != nil {
				return err
			}
			count = importItems(ctx, st, items, summarizer)
		} else {
			var err error
			count, err = importFeed(ctx, st, url, summarizer)
			if err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items.\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "path to a YAML article list instead of a feed url")
}
