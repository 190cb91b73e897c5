package services

import (
	"testing"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
)

func sampleReportInput() ReportInput {
	return ReportInput{
		TotalReviews:   4,
		DroppedReviews: 1,
		Tokens: []models.Token{
			{Word: "clean", ListingID: "1", ReviewerID: "a", YearMonth: "2019-01"},
			{Word: "dirty", ListingID: "2", ReviewerID: "b", YearMonth: "2019-02"},
			{Word: "quiet", ListingID: "1", ReviewerID: "a", YearMonth: "2019-01"},
		},
		MatchedTokens: 3,
		Monthly: []*models.ScoredGroup{
			{Key: "2019-01", PositiveCount: 2, SentimentScore: 2},
			{Key: "2019-02", NegativeCount: 1, SentimentScore: -1},
		},
		ByListing: []*models.ScoredGroup{
			{Key: "1", SentimentScore: 2},
			{Key: "2", SentimentScore: -1},
		},
		TopListingCount: 5,
	}
}

func TestInsightReportOverview(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleReportInput())

	if r.TotalReviews != 4 || r.DroppedReviews != 1 {
		t.Errorf("review counts: got %d/%d, want 4/1", r.TotalReviews, r.DroppedReviews)
	}
	if r.TotalTokens != 3 || r.MatchedTokens != 3 {
		t.Errorf("token counts: got %d/%d, want 3/3", r.TotalTokens, r.MatchedTokens)
	}
	if r.UniqueListings != 2 {
		t.Errorf("UniqueListings: got %d, want 2", r.UniqueListings)
	}
	if r.UniqueReviewers != 2 {
		t.Errorf("UniqueReviewers: got %d, want 2", r.UniqueReviewers)
	}
}

func TestInsightReportBestAndWorstMonth(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleReportInput())

	if r.BestMonth == nil || r.BestMonth.Key != "2019-01" {
		t.Errorf("BestMonth: got %+v, want 2019-01", r.BestMonth)
	}
	if r.WorstMonth == nil || r.WorstMonth.Key != "2019-02" {
		t.Errorf("WorstMonth: got %+v, want 2019-02", r.WorstMonth)
	}
}

func TestInsightReportListingSplit(t *testing.T) {
	svc := NewInsightService(newTestLogger())

	in := sampleReportInput()
	in.ByListing = nil
	for i := 0; i < 12; i++ {
		in.ByListing = append(in.ByListing, &models.ScoredGroup{
			Key:            string(rune('a' + i)),
			SentimentScore: 12 - i,
		})
	}
	in.TopListingCount = 5

	r := svc.Generate(in)
	if len(r.TopListings) != 5 {
		t.Errorf("TopListings: got %d, want 5", len(r.TopListings))
	}
	if len(r.BottomListings) != 5 {
		t.Errorf("BottomListings: got %d, want 5", len(r.BottomListings))
	}
	if r.TopListings[0].SentimentScore != 12 {
		t.Errorf("top listing score: got %d, want 12", r.TopListings[0].SentimentScore)
	}
}

func TestInsightReportListingSplitDoesNotOverlap(t *testing.T) {
	svc := NewInsightService(newTestLogger())

	in := sampleReportInput()
	in.ByListing = nil
	for i := 0; i < 7; i++ {
		in.ByListing = append(in.ByListing, &models.ScoredGroup{
			Key:            string(rune('a' + i)),
			SentimentScore: 7 - i,
		})
	}
	in.TopListingCount = 5

	r := svc.Generate(in)
	if len(r.TopListings) != 5 {
		t.Fatalf("TopListings: got %d, want 5", len(r.TopListings))
	}
	if len(r.BottomListings) != 2 {
		t.Fatalf("BottomListings: got %d, want 2", len(r.BottomListings))
	}
	seen := make(map[string]struct{})
	for _, g := range r.TopListings {
		seen[g.Key] = struct{}{}
	}
	for _, g := range r.BottomListings {
		if _, ok := seen[g.Key]; ok {
			t.Errorf("listing %s appears in both top and bottom", g.Key)
		}
	}
}

func TestInsightReportReviewerSplit(t *testing.T) {
	svc := NewInsightService(newTestLogger())

	in := sampleReportInput()
	in.ByReviewer = []*models.ScoredGroup{
		{Key: "a", SentimentScore: 3},
		{Key: "b", SentimentScore: -2},
	}

	r := svc.Generate(in)
	if len(r.TopReviewers) != 2 {
		t.Fatalf("TopReviewers: got %d, want 2", len(r.TopReviewers))
	}
	if r.TopReviewers[0].Key != "a" {
		t.Errorf("TopReviewers[0]: got %s, want a", r.TopReviewers[0].Key)
	}
	if len(r.BottomReviewers) != 0 {
		t.Errorf("BottomReviewers: got %d, want 0", len(r.BottomReviewers))
	}
}

func TestInsightReportEmptyInput(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(ReportInput{})

	if r.TotalReviews != 0 || r.BestMonth != nil || r.WorstMonth != nil {
		t.Errorf("empty input should produce an empty report, got %+v", r)
	}
}
