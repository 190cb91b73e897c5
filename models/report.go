package models

// InsightReport holds the computed analytics over the scored dataset.
type InsightReport struct {
	TotalReviews    int
	DroppedReviews  int
	TotalTokens     int
	MatchedTokens   int
	UniqueListings  int
	UniqueReviewers int

	Monthly    []*ScoredGroup
	BestMonth  *ScoredGroup
	WorstMonth *ScoredGroup

	TopListings    []*ScoredGroup
	BottomListings []*ScoredGroup

	TopReviewers    []*ScoredGroup
	BottomReviewers []*ScoredGroup

	TopPositiveWords []*WordCount
	TopNegativeWords []*WordCount
	EmotionTotals    []*EmotionCount
	TopTerms         []*TermWeight

	Segments []*SegmentSummary
}
