package words

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewWordStore(pool *pgxpool.Pool) *WordStore {
	return &WordStore{pool: pool}
}

type WordStore struct {
	pool *pgxpool.Pool
}

func (s *WordStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS word_list (
			word text PRIMARY KEY
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure word_list schema: %w", err)
	}
	return nil
}

// Search runs the solver predicate over word_list. The where fragment and
// args come from solver.Predicate; nothing else is ever interpolated here.
func (s *WordStore) Search(ctx context.Context, where string, args []any) ([]string, error) {
	query := "SELECT word FROM word_list WHERE " + where + " ORDER BY word"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

func (s *WordStore) All(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, "SELECT word FROM word_list ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

func (s *WordStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.pool.QueryRow(ctx, "SELECT count(*) FROM word_list").Scan(&count); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return count, nil
}

// BulkInsert loads a dictionary batch, skipping words already present.
// Returns the number of newly inserted rows.
func (s *WordStore) BulkInsert(ctx context.Context, words []string) (int64, error) {
	if len(words) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, w := range words {
		batch.Queue("INSERT INTO word_list (word) VALUES ($1) ON CONFLICT (word) DO NOTHING", w)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range words {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert word: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func scanWords(rows pgx.Rows) ([]string, error) {
	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return words, nil
}
