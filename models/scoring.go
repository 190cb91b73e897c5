package models

// ScoredGroup aggregates lexicon matches for one grouping key (a year-month
// bucket, a listing or a reviewer). SentimentScore is always
// PositiveCount − NegativeCount.
type ScoredGroup struct {
	Key            string
	PositiveCount  int
	NegativeCount  int
	SentimentScore int
}

// WordCount is an aggregated count for a single lexicon-tagged word.
type WordCount struct {
	Word     string
	Polarity string
	Count    int
}

// EmotionCount is the number of tokens tagged with one NRC emotion
// under a grouping key. Key is empty for corpus-wide totals.
type EmotionCount struct {
	Key     string
	Emotion string
	Count   int
}

// TermWeight is a TF-IDF weighted term.
type TermWeight struct {
	Term   string
	Weight float64
}
