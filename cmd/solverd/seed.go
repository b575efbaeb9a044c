package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"wordsolver/internal/config"
	"wordsolver/internal/dict"
	"wordsolver/internal/store/words"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Args:  cobra.NoArgs,
	Short: "Seed the dictionary into Postgres",
	Long:  `Loads a word file, inserts it into the word_list table, records a snapshot, and drops stale cached results.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().String("file", "", "word file path (defaults to the configured dictionary)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = cfg.Dict.Path
	}

	log := newLogger(cfg.Log)

	loaded, err := dict.NewDictManager(log).LoadWordFile(path)
	if err != nil {
		return fmt.Errorf("load word file: %w", err)
	}

	ctx := cmd.Context()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	wordStore := words.NewWordStore(pool)
	if err := wordStore.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	inserted, err := wordStore.BulkInsert(ctx, loaded)
	if err != nil {
		return fmt.Errorf("insert words: %w", err)
	}

	if err := dict.NewDictStore(cfg.Dict.SnapshotPath).SetSnapshot(path, loaded); err != nil {
		log.Warn().Err(err).Msg("snapshot save failed")
	}

	if err := flushSolveCache(ctx, cfg.Redis.Addr); err != nil {
		log.Warn().Err(err).Msg("cache flush failed")
	}

	total, err := wordStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("count words: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d words (%d new), %d total\n", len(loaded), inserted, total)
	return nil
}

// flushSolveCache drops cached solver results so a running server does not
// answer from the pre-seed dictionary.
func flushSolveCache(ctx context.Context, addr string) error {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	iter := client.Scan(ctx, 0, "solve:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
