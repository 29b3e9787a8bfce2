package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsverify/internal/ai"
	"newsverify/internal/feed"
	"newsverify/internal/redisclient"
	"newsverify/internal/server"
	"newsverify/internal/storage"
	"newsverify/internal/store"

	"github.com/spf13/cobra"
)

var serveMemory bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		var kv storage.KV
		if serveMemory {
			kv = storage.NewMemoryKV()
		} else {
			rdb := redisclient.New(cfg.Redis)
			defer rdb.Close()
			kv = storage.NewRedisKV(rdb)
		}

		st := store.New(store.Options{
			Snapshots: storage.NewSnapshots(kv),
			SeedTotal: cfg.Seed.Total,
		})
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		st.Init(ctx)
		slog.Info("store initialized", "news", len(st.News()), "votes", len(st.Votes()))

		// One-shot feed import at startup, gated by the import.auto flag.
		if cfg.Import.Auto && cfg.Import.FeedURL != "" {
			var summarizer ai.Summarizer
			if cfg.OpenAI.APIKey != "" {
				summarizer = ai.NewOpenAI(ai.Config{APIKey: cfg.OpenAI.APIKey, Model: cfg.OpenAI.Model, BaseURL: cfg.OpenAI.BaseURL})
			}
			ctxImp, cancelImp := context.WithTimeout(ctx, 30*time.Second)
			n, err := importFeed(ctxImp, st, cfg.Import.FeedURL, summarizer)
			cancelImp()
			if err != nil {
				slog.Warn("serve: auto import failed", "url", cfg.Import.FeedURL, "err", err)
			} else {
				slog.Info("serve: auto import done", "url", cfg.Import.FeedURL, "items", n)
			}
		}

		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: server.New(st).Router(),
		}

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			slog.Info("received signal, shutting down", "signal", s.String())
			shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shCancel()
			_ = srv.Shutdown(shCtx)
			cancel()
		}()

		slog.Info("serving HTTP API", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// importFeed fetches a feed and adds each item as imported news, filling a
// missing summary from the optional summarizer.
func importFeed(ctx context.Context, st *store.Store, url string, summarizer ai.Summarizer) (int, error) {
	items, err := feed.NewClient(10 * time.Second).Fetch(ctx, url)
	if err != nil {
		return 0, err
	}
	return importItems(ctx, st, items, summarizer), nil
}

func importItems(ctx context.Context, st *store.Store, items []feed.Item, summarizer ai.Summarizer) int {
	count := 0
	for _, it := range items {
		summary := it.Summary
		if summary == "" && summarizer != nil {
			if s, err := summarizer.Summarize(ctx, it.Title, it.Content); err == nil {
				summary = s
			}
		}
		st.AddImportedNews(store.ImportedNewsInput{
			Title:     it.Title,
			Summary:   summary,
			Content:   it.Content,
			Reporter:  it.Reporter,
			ImageURL:  it.ImageURL,
			Source:    it.Source,
			Link:      it.Link,
			CreatedAt: it.PublishedAt,
		})
		count++
	}
	return count
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveMemory, "memory", false, "use in-memory storage instead of Redis")
}
