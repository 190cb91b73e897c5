package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/utils"
)

// PostgresWriter persists scored summaries and reviewer segments to
// PostgreSQL. Each run replaces the previous run's rows.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := utils.RetryConfig{MaxAttempts: 5, BaseDelay: time.Second, Logger: logger}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS monthly_sentiment (
			year_month      VARCHAR(7)  PRIMARY KEY,
			positive_count  INTEGER     NOT NULL DEFAULT 0,
			negative_count  INTEGER     NOT NULL DEFAULT 0,
			sentiment_score INTEGER     NOT NULL DEFAULT 0,
			computed_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS reviewer_segments (
			reviewer_id           TEXT          PRIMARY KEY,
			total_reviews         INTEGER       NOT NULL DEFAULT 0,
			avg_sentiment         NUMERIC(10,4) NOT NULL DEFAULT 0,
			avg_review_length     NUMERIC(10,2) NOT NULL DEFAULT 0,
			positive_review_count INTEGER       NOT NULL DEFAULT 0,
			negative_review_count INTEGER       NOT NULL DEFAULT 0,
			cluster               INTEGER,
			computed_at           TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_segments_cluster ON reviewer_segments(cluster);
	`)
	return err
}

// WriteMonthly replaces the monthly sentiment rows.
func (pw *PostgresWriter) WriteMonthly(groups []*models.ScoredGroup) error {
	if len(groups) == 0 {
		return nil
	}
	if _, err := pw.db.Exec("DELETE FROM monthly_sentiment"); err != nil {
		return fmt.Errorf("postgres: clear monthly: %w", err)
	}

	valueStrings := make([]string, 0, len(groups))
	valueArgs := make([]interface{}, 0, len(groups)*4)
	for idx, g := range groups {
		base := idx * 4
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d)", base+1, base+2, base+3, base+4))
		valueArgs = append(valueArgs, g.Key, g.PositiveCount, g.NegativeCount, g.SentimentScore)
	}

	query := fmt.Sprintf(`
		INSERT INTO monthly_sentiment (year_month, positive_count, negative_count, sentiment_score)
		VALUES %s
		ON CONFLICT (year_month) DO NOTHING
	`, strings.Join(valueStrings, ","))

	if _, err := pw.db.Exec(query, valueArgs...); err != nil {
		return fmt.Errorf("postgres: insert monthly: %w", err)
	}
	return nil
}

// WriteSegments replaces the reviewer segment rows, batching inserts.
func (pw *PostgresWriter) WriteSegments(profiles []*models.ReviewerProfile, assignments []*models.ClusterAssignment) error {
	if len(profiles) == 0 {
		return nil
	}
	if _, err := pw.db.Exec("DELETE FROM reviewer_segments"); err != nil {
		return fmt.Errorf("postgres: clear segments: %w", err)
	}

	clusters := make(map[string]int, len(assignments))
	for _, a := range assignments {
		clusters[a.ReviewerID] = a.Cluster
	}

	const batchSize = 50
	for i := 0; i < len(profiles); i += batchSize {
		end := i + batchSize
		if end > len(profiles) {
			end = len(profiles)
		}
		if err := pw.insertSegmentBatch(profiles[i:end], clusters); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertSegmentBatch(batch []*models.ReviewerProfile, clusters map[string]int) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*7)

	for idx, p := range batch {
		base := idx * 7
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7))

		var cluster interface{}
		if c, ok := clusters[p.ReviewerID]; ok {
			cluster = c
		}
		valueArgs = append(valueArgs,
			p.ReviewerID, p.TotalReviews, p.AvgSentiment, p.AvgReviewLength,
			p.PositiveReviewCount, p.NegativeReviewCount, cluster)
	}

	query := fmt.Sprintf(`
		INSERT INTO reviewer_segments (reviewer_id, total_reviews, avg_sentiment,
			avg_review_length, positive_review_count, negative_review_count, cluster)
		VALUES %s
		ON CONFLICT (reviewer_id) DO NOTHING
	`, strings.Join(valueStrings, ","))

	if _, err := pw.db.Exec(query, valueArgs...); err != nil {
		return fmt.Errorf("postgres: insert segments: %w", err)
	}
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
