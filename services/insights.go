package services

import (
	"fmt"
	"strings"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// ReportInput collects the pipeline outputs the report is assembled from.
type ReportInput struct {
	TotalReviews   int
	DroppedReviews int
	Tokens         []models.Token
	MatchedTokens  int

	Monthly          []*models.ScoredGroup
	ByListing        []*models.ScoredGroup
	ByReviewer       []*models.ScoredGroup
	TopPositiveWords []*models.WordCount
	TopNegativeWords []*models.WordCount
	EmotionTotals    []*models.EmotionCount
	TopTerms         []*models.TermWeight
	Segments         []*models.SegmentSummary

	TopListingCount int
}

func (s *InsightService) Generate(in ReportInput) *models.InsightReport {
	report := &models.InsightReport{
		TotalReviews:     in.TotalReviews,
		DroppedReviews:   in.DroppedReviews,
		TotalTokens:      len(in.Tokens),
		MatchedTokens:    in.MatchedTokens,
		Monthly:          in.Monthly,
		TopPositiveWords: in.TopPositiveWords,
		TopNegativeWords: in.TopNegativeWords,
		EmotionTotals:    in.EmotionTotals,
		TopTerms:         in.TopTerms,
		Segments:         in.Segments,
	}

	listings := make(map[string]struct{})
	reviewers := make(map[string]struct{})
	for _, t := range in.Tokens {
		listings[t.ListingID] = struct{}{}
		reviewers[t.ReviewerID] = struct{}{}
	}
	report.UniqueListings = len(listings)
	report.UniqueReviewers = len(reviewers)

	for _, g := range in.Monthly {
		if report.BestMonth == nil || g.SentimentScore > report.BestMonth.SentimentScore {
			report.BestMonth = g
		}
		if report.WorstMonth == nil || g.SentimentScore < report.WorstMonth.SentimentScore {
			report.WorstMonth = g
		}
	}

	top := in.TopListingCount
	if top <= 0 {
		top = 5
	}
	report.TopListings, report.BottomListings = splitRanked(in.ByListing, top)
	report.TopReviewers, report.BottomReviewers = splitRanked(in.ByReviewer, top)

	return report
}

// splitRanked takes the top and bottom n entries of a score-sorted slice.
// The bottom slice is capped so that no entry appears in both halves.
func splitRanked(groups []*models.ScoredGroup, n int) (top, bottom []*models.ScoredGroup) {
	if len(groups) <= n {
		return groups, nil
	}
	top = groups[:n]
	start := len(groups) - n
	if start < n {
		start = n
	}
	return top, groups[start:]
}

func (s *InsightService) Print(r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 AIRBNB REVIEW SENTIMENT INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Reviews analysed  : \033[1m%d\033[0m (dropped %d)\n", r.TotalReviews, r.DroppedReviews)
	fmt.Printf("  Tokens            : \033[1m%d\033[0m (%d carried sentiment)\n", r.TotalTokens, r.MatchedTokens)
	fmt.Printf("  Listings covered  : \033[1m%d\033[0m\n", r.UniqueListings)
	fmt.Printf("  Reviewers covered : \033[1m%d\033[0m\n", r.UniqueReviewers)
	fmt.Println()

	// Monthly trend
	fmt.Printf("\033[1;33m  Sentiment by Month\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.Monthly) == 0 {
		fmt.Printf("  No dated reviews\n")
	} else {
		for _, g := range r.Monthly {
			fmt.Printf("  %s  %+5d  (%d pos / %d neg)\n",
				g.Key, g.SentimentScore, g.PositiveCount, g.NegativeCount)
		}
		if r.BestMonth != nil {
			fmt.Printf("  Best month  : \033[1;32m%s (%+d)\033[0m\n", r.BestMonth.Key, r.BestMonth.SentimentScore)
		}
		if r.WorstMonth != nil {
			fmt.Printf("  Worst month : \033[1;31m%s (%+d)\033[0m\n", r.WorstMonth.Key, r.WorstMonth.SentimentScore)
		}
	}
	fmt.Println()

	// Listings
	s.printRanked("Listings by Sentiment", "listing", r.TopListings, r.BottomListings)

	// Reviewers
	s.printRanked("Reviewers by Sentiment", "reviewer", r.TopReviewers, r.BottomReviewers)

	// Words
	s.printWords("Top Positive Words", r.TopPositiveWords)
	s.printWords("Top Negative Words", r.TopNegativeWords)

	// Emotions
	fmt.Printf("\033[1;33m  Emotion Totals (NRC)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.EmotionTotals) == 0 {
		fmt.Printf("  No emotion matches\n")
	} else {
		max := r.EmotionTotals[0].Count
		for _, e := range r.EmotionTotals {
			bar := strings.Repeat("█", scaleBar(e.Count, max, 30))
			fmt.Printf("  %-14s %s (%d)\n", e.Emotion, bar, e.Count)
		}
	}
	fmt.Println()

	// Distinctive terms
	fmt.Printf("\033[1;33m  Distinctive Terms (TF-IDF)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopTerms) == 0 {
		fmt.Printf("  No terms\n")
	} else {
		for _, tw := range r.TopTerms {
			fmt.Printf("  %-20s %.4f\n", tw.Term, tw.Weight)
		}
	}
	fmt.Println()

	// Segments
	fmt.Printf("\033[1;33m  Reviewer Segments (k-means)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.Segments) == 0 {
		fmt.Printf("  No segmentation performed\n")
	} else {
		for _, seg := range r.Segments {
			fmt.Printf("  Segment %d: \033[1m%d reviewers\033[0m — avg sentiment %.2f, avg length %.1f tokens, avg %.1f reviews\n",
				seg.Cluster, seg.Size, seg.AvgSentiment, seg.AvgReviewLength, seg.AvgTotalReviews)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func (s *InsightService) printRanked(title, noun string, top, bottom []*models.ScoredGroup) {
	thin := strings.Repeat("─", 54)
	fmt.Printf("\033[1;33m  %s\033[0m\n", title)
	fmt.Printf("  %s\n", thin)
	if len(top) == 0 {
		fmt.Printf("  No %s data\n", noun)
	} else {
		for i, g := range top {
			fmt.Printf("  \033[1m%d.\033[0m %s %-14s \033[1;32m%+d\033[0m\n", i+1, noun, g.Key, g.SentimentScore)
		}
		for _, g := range bottom {
			fmt.Printf("     %s %-14s \033[1;31m%+d\033[0m\n", noun, g.Key, g.SentimentScore)
		}
	}
	fmt.Println()
}

func (s *InsightService) printWords(title string, words []*models.WordCount) {
	thin := strings.Repeat("─", 54)
	fmt.Printf("\033[1;33m  %s\033[0m\n", title)
	fmt.Printf("  %s\n", thin)
	if len(words) == 0 {
		fmt.Printf("  No matches\n")
	} else {
		max := words[0].Count
		for _, w := range words {
			bar := strings.Repeat("█", scaleBar(w.Count, max, 30))
			fmt.Printf("  %-16s %s (%d)\n", w.Word, bar, w.Count)
		}
	}
	fmt.Println()
}

// scaleBar maps a count onto a bar width, keeping at least one block for any
// non-zero count.
func scaleBar(count, max, width int) int {
	if max <= 0 || count <= 0 {
		return 0
	}
	n := count * width / max
	if n < 1 {
		n = 1
	}
	return n
}
