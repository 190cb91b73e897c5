package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
)

func readBack(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWriteMonthly(t *testing.T) {
	dir := t.TempDir()
	w, err := NewCSVWriter(dir)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}

	groups := []*models.ScoredGroup{
		{Key: "2019-01", PositiveCount: 10, NegativeCount: 3, SentimentScore: 7},
		{Key: "2019-02", PositiveCount: 1, NegativeCount: 4, SentimentScore: -3},
	}
	if err := w.WriteMonthly(groups); err != nil {
		t.Fatalf("WriteMonthly: %v", err)
	}

	rows := readBack(t, filepath.Join(dir, "monthly_sentiment.csv"))
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3 (header + 2)", len(rows))
	}
	if rows[1][0] != "2019-01" || rows[1][3] != "7" {
		t.Errorf("first data row: got %v", rows[1])
	}
	if rows[2][3] != "-3" {
		t.Errorf("second data row score: got %q, want -3", rows[2][3])
	}
}

func TestWriteMonthlyTerms(t *testing.T) {
	dir := t.TempDir()
	w, err := NewCSVWriter(dir)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}

	byMonth := map[string][]*models.TermWeight{
		"2019-02": {{Term: "february", Weight: 0.25}},
		"2019-01": {
			{Term: "january", Weight: 0.5},
			{Term: "winter", Weight: 0.1},
		},
	}

	if err := w.WriteMonthlyTerms(byMonth); err != nil {
		t.Fatalf("WriteMonthlyTerms: %v", err)
	}

	rows := readBack(t, filepath.Join(dir, "monthly_terms.csv"))
	if len(rows) != 4 {
		t.Fatalf("rows: got %d, want 4", len(rows))
	}
	// Months come out chronologically regardless of map order.
	if rows[1][0] != "2019-01" || rows[1][1] != "january" {
		t.Errorf("row 1: got %v, want 2019-01 january", rows[1])
	}
	if rows[2][0] != "2019-01" || rows[2][1] != "winter" {
		t.Errorf("row 2: got %v, want 2019-01 winter", rows[2])
	}
	if rows[3][0] != "2019-02" || rows[3][1] != "february" {
		t.Errorf("row 3: got %v, want 2019-02 february", rows[3])
	}
	if rows[1][2] != "0.500000" {
		t.Errorf("weight: got %s, want 0.500000", rows[1][2])
	}
}

func TestWriteSegments(t *testing.T) {
	dir := t.TempDir()
	w, err := NewCSVWriter(dir)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}

	profiles := []*models.ReviewerProfile{
		{ReviewerID: "alice", TotalReviews: 2, AvgSentiment: 0.5, AvgReviewLength: 1.5},
		{ReviewerID: "broken", TotalReviews: 1},
	}
	assignments := []*models.ClusterAssignment{
		{ReviewerID: "alice", Cluster: 2},
	}

	if err := w.WriteSegments(profiles, assignments); err != nil {
		t.Fatalf("WriteSegments: %v", err)
	}

	rows := readBack(t, filepath.Join(dir, "reviewer_segments.csv"))
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(rows))
	}
	if rows[1][0] != "alice" || rows[1][6] != "2" {
		t.Errorf("alice row: got %v", rows[1])
	}
	// Reviewer excluded from clustering carries an empty cluster field.
	if rows[2][0] != "broken" || rows[2][6] != "" {
		t.Errorf("broken row: got %v", rows[2])
	}
}
