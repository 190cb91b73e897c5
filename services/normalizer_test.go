package services

import (
	"regexp"
	"testing"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger() }

func TestCleanDropsEmptyComments(t *testing.T) {
	n := NewNormalizer(newTestLogger())
	raw := []*models.RawReview{
		{ListingID: "1", ReviewerID: "a", RawDate: "2019-05-01", Comment: "Lovely apartment"},
		{ListingID: "2", ReviewerID: "b", RawDate: "2019-05-02", Comment: ""},
		{ListingID: "3", ReviewerID: "c", RawDate: "2019-05-03", Comment: "   "},
		{ListingID: "4", ReviewerID: "d", RawDate: "2019-05-04", Comment: "12345 !!!"},
	}

	cleaned := n.Clean(raw)
	if len(cleaned) != 1 {
		t.Errorf("expected 1 review after dropping empty comments, got %d", len(cleaned))
	}
}

func TestCleanDeduplicatesRows(t *testing.T) {
	n := NewNormalizer(newTestLogger())
	raw := []*models.RawReview{
		{ListingID: "1", ReviewerID: "a", RawDate: "2019-05-01", Comment: "Great host"},
		{ListingID: "1", ReviewerID: "a", RawDate: "2019-05-01", Comment: "Great host"},
	}

	cleaned := n.Clean(raw)
	if len(cleaned) != 1 {
		t.Errorf("expected 1 review after deduplication, got %d", len(cleaned))
	}
}

func TestCleanDerivesYearMonth(t *testing.T) {
	n := NewNormalizer(newTestLogger())

	tests := []struct {
		rawDate string
		want    string
	}{
		{"2016-07-18", "2016-07"},
		{"2020-01-02", "2020-01"},
		{"not a date", ""},
		{"", ""},
		{"18/07/2016", ""},
	}

	for _, tt := range tests {
		raw := []*models.RawReview{
			{ListingID: "1", ReviewerID: "a", RawDate: tt.rawDate, Comment: "Lovely place to stay"},
		}
		cleaned := n.Clean(raw)
		if len(cleaned) != 1 {
			t.Fatalf("Clean dropped review with date %q", tt.rawDate)
		}
		if cleaned[0].YearMonth != tt.want {
			t.Errorf("YearMonth for %q: got %q, want %q", tt.rawDate, cleaned[0].YearMonth, tt.want)
		}
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	n := NewNormalizer(newTestLogger())
	raw := []*models.RawReview{
		{ListingID: "1", ReviewerID: "a", RawDate: "2019-05-01", Comment: "Nice, clean & quiet!!"},
		{ListingID: "2", ReviewerID: "b", RawDate: "2019-06-01", Comment: "Terrible experience..."},
		{ListingID: "3", ReviewerID: "c", RawDate: "2019-07-01", Comment: ""},
	}

	first := n.Clean(raw)

	again := make([]*models.RawReview, len(first))
	for i, r := range first {
		again[i] = &models.RawReview{
			ListingID:  r.ListingID,
			ReviewerID: r.ReviewerID,
			RawDate:    r.Date.Format("2006-01-02"),
			Comment:    r.Comment,
		}
	}
	second := n.Clean(again)

	if len(second) != len(first) {
		t.Errorf("second Clean pass changed row count: %d → %d", len(first), len(second))
	}
	for i := range second {
		if second[i].Comment != first[i].Comment {
			t.Errorf("second Clean pass changed comment %d: %q → %q", i, first[i].Comment, second[i].Comment)
		}
	}
}

func TestTokenizeStripsPunctuationAndDigits(t *testing.T) {
	n := NewNormalizer(newTestLogger())
	raw := []*models.RawReview{
		{ListingID: "1", ReviewerID: "a", RawDate: "2019-05-01", Comment: "Room 12 was 100% spotless!! (really)"},
	}

	tokens := n.Tokenize(n.Clean(raw))
	invalid := regexp.MustCompile(`[^a-z]`)
	for _, tok := range tokens {
		if invalid.MatchString(tok.Word) {
			t.Errorf("token %q contains punctuation or digits", tok.Word)
		}
	}
}

func TestTokenizeRemovesStopWords(t *testing.T) {
	n := NewNormalizer(newTestLogger())
	raw := []*models.RawReview{
		{ListingID: "1", ReviewerID: "a", RawDate: "2019-05-01", Comment: "Clean, quiet, and SAFE!!"},
	}

	tokens := n.Tokenize(n.Clean(raw))
	words := map[string]bool{}
	for _, tok := range tokens {
		words[tok.Word] = true
	}

	for _, want := range []string{"clean", "quiet", "safe"} {
		if !words[want] {
			t.Errorf("expected token %q, got %v", want, words)
		}
	}
	if words["and"] {
		t.Error("stop word \"and\" should have been removed")
	}
	if len(tokens) != 3 {
		t.Errorf("token count: got %d, want 3", len(tokens))
	}
}

func TestTokenizeCarriesBackReferences(t *testing.T) {
	n := NewNormalizer(newTestLogger())
	raw := []*models.RawReview{
		{ListingID: "77", ReviewerID: "r9", RawDate: "2018-03-10", Comment: "Spotless apartment"},
	}

	tokens := n.Tokenize(n.Clean(raw))
	if len(tokens) == 0 {
		t.Fatal("expected tokens")
	}
	for _, tok := range tokens {
		if tok.ListingID != "77" || tok.ReviewerID != "r9" || tok.YearMonth != "2018-03" || tok.Review != 0 {
			t.Errorf("token back-references wrong: %+v", tok)
		}
	}
}
