package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
)

// CSVWriter writes the machine-readable summary outputs under a directory:
// monthly_sentiment.csv, monthly_emotions.csv, monthly_terms.csv and
// reviewer_segments.csv.
type CSVWriter struct {
	dir string
}

// NewCSVWriter creates the output directory if needed.
func NewCSVWriter(dir string) (*CSVWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}
	return &CSVWriter{dir: dir}, nil
}

// WriteMonthly writes the per-month sentiment summary.
func (c *CSVWriter) WriteMonthly(groups []*models.ScoredGroup) error {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.Key,
			strconv.Itoa(g.PositiveCount),
			strconv.Itoa(g.NegativeCount),
			strconv.Itoa(g.SentimentScore),
		})
	}
	header := []string{"year_month", "positive_count", "negative_count", "sentiment_score"}
	return c.writeFile("monthly_sentiment.csv", header, rows)
}

// WriteMonthlyEmotions writes NRC emotion counts per month.
func (c *CSVWriter) WriteMonthlyEmotions(counts []*models.EmotionCount) error {
	rows := make([][]string, 0, len(counts))
	for _, e := range counts {
		rows = append(rows, []string{e.Key, e.Emotion, strconv.Itoa(e.Count)})
	}
	header := []string{"year_month", "emotion", "count"}
	return c.writeFile("monthly_emotions.csv", header, rows)
}

// WriteMonthlyTerms writes the top TF-IDF terms per month, months in
// chronological order.
func (c *CSVWriter) WriteMonthlyTerms(byMonth map[string][]*models.TermWeight) error {
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	rows := make([][]string, 0, len(byMonth))
	for _, m := range months {
		for _, tw := range byMonth[m] {
			rows = append(rows, []string{m, tw.Term, strconv.FormatFloat(tw.Weight, 'f', 6, 64)})
		}
	}
	header := []string{"year_month", "term", "tfidf_weight"}
	return c.writeFile("monthly_terms.csv", header, rows)
}

// WriteSegments writes reviewer profiles joined with their cluster labels.
// Reviewers excluded from clustering carry an empty cluster field.
func (c *CSVWriter) WriteSegments(profiles []*models.ReviewerProfile, assignments []*models.ClusterAssignment) error {
	clusters := make(map[string]int, len(assignments))
	for _, a := range assignments {
		clusters[a.ReviewerID] = a.Cluster
	}

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		cluster := ""
		if c, ok := clusters[p.ReviewerID]; ok {
			cluster = strconv.Itoa(c)
		}
		rows = append(rows, []string{
			p.ReviewerID,
			strconv.Itoa(p.TotalReviews),
			strconv.FormatFloat(p.AvgSentiment, 'f', 4, 64),
			strconv.FormatFloat(p.AvgReviewLength, 'f', 2, 64),
			strconv.Itoa(p.PositiveReviewCount),
			strconv.Itoa(p.NegativeReviewCount),
			cluster,
		})
	}
	header := []string{
		"reviewer_id", "total_reviews", "avg_sentiment", "avg_review_length",
		"positive_review_count", "negative_review_count", "cluster",
	}
	return c.writeFile("reviewer_segments.csv", header, rows)
}

func (c *CSVWriter) writeFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(c.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// Close is a no-op; files are closed per write.
func (c *CSVWriter) Close() error {
	return nil
}
