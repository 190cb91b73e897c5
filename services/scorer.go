package services

import (
	"sort"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/lexicon"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/utils"
)

// Scorer joins tokens against the polarity and emotion lexicons and
// aggregates match counts per grouping key. Tokens with no lexicon entry
// contribute zero; they are expected and not flagged.
type Scorer struct {
	polarity *lexicon.Lexicon
	emotions *lexicon.Lexicon
	logger   *utils.Logger
}

// NewScorer creates a Scorer over the given lexicons.
func NewScorer(polarity, emotions *lexicon.Lexicon, logger *utils.Logger) *Scorer {
	return &Scorer{polarity: polarity, emotions: emotions, logger: logger}
}

// ScoreByMonth aggregates sentiment per year-month bucket, sorted
// chronologically. Tokens without a month bucket are excluded.
func (s *Scorer) ScoreByMonth(tokens []models.Token) []*models.ScoredGroup {
	groups := s.scoreBy(tokens, func(t models.Token) string { return t.YearMonth }, true)
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// ScoreByListing aggregates sentiment per listing, sorted by score descending.
func (s *Scorer) ScoreByListing(tokens []models.Token) []*models.ScoredGroup {
	groups := s.scoreBy(tokens, func(t models.Token) string { return t.ListingID }, false)
	sortByScore(groups)
	return groups
}

// ScoreByReviewer aggregates sentiment per reviewer, sorted by score descending.
func (s *Scorer) ScoreByReviewer(tokens []models.Token) []*models.ScoredGroup {
	groups := s.scoreBy(tokens, func(t models.Token) string { return t.ReviewerID }, false)
	sortByScore(groups)
	return groups
}

// ScoreByReview computes the sentiment score of each individual review.
// The result is indexed by the token's review index; total is the number of
// cleaned reviews.
func (s *Scorer) ScoreByReview(tokens []models.Token, total int) []int {
	scores := make([]int, total)
	for _, t := range tokens {
		for _, label := range s.polarity.Labels(t.Word) {
			switch label {
			case lexicon.Positive:
				scores[t.Review]++
			case lexicon.Negative:
				scores[t.Review]--
			}
		}
	}
	return scores
}

func (s *Scorer) scoreBy(tokens []models.Token, key func(models.Token) string, skipEmpty bool) []*models.ScoredGroup {
	byKey := make(map[string]*models.ScoredGroup)

	for _, t := range tokens {
		k := key(t)
		if skipEmpty && k == "" {
			continue
		}

		g, ok := byKey[k]
		if !ok {
			g = &models.ScoredGroup{Key: k}
			byKey[k] = g
		}

		// Unmatched tokens still materialise their group with zero counts,
		// so a month of purely neutral text scores 0 rather than vanishing.
		for _, label := range s.polarity.Labels(t.Word) {
			switch label {
			case lexicon.Positive:
				g.PositiveCount++
			case lexicon.Negative:
				g.NegativeCount++
			}
		}
	}

	groups := make([]*models.ScoredGroup, 0, len(byKey))
	for _, g := range byKey {
		g.SentimentScore = g.PositiveCount - g.NegativeCount
		groups = append(groups, g)
	}
	return groups
}

// EmotionsByMonth counts NRC emotion matches per year-month bucket. Tokens
// without a month bucket are excluded. A token tagged with several emotions
// counts once per emotion.
func (s *Scorer) EmotionsByMonth(tokens []models.Token) []*models.EmotionCount {
	counts := s.countEmotions(tokens, func(t models.Token) string { return t.YearMonth }, true)
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Key != counts[j].Key {
			return counts[i].Key < counts[j].Key
		}
		return counts[i].Emotion < counts[j].Emotion
	})
	return counts
}

// EmotionTotals counts NRC emotion matches over the whole corpus.
func (s *Scorer) EmotionTotals(tokens []models.Token) []*models.EmotionCount {
	counts := s.countEmotions(tokens, func(models.Token) string { return "" }, false)
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Emotion < counts[j].Emotion
	})
	return counts
}

func (s *Scorer) countEmotions(tokens []models.Token, key func(models.Token) string, skipEmpty bool) []*models.EmotionCount {
	type groupEmotion struct {
		key     string
		emotion string
	}
	byKey := make(map[groupEmotion]*models.EmotionCount)

	for _, t := range tokens {
		k := key(t)
		if skipEmpty && k == "" {
			continue
		}
		for _, emotion := range s.emotions.Labels(t.Word) {
			// The NRC lexicon also tags plain positive/negative; only
			// emotion labels are counted here.
			if emotion == lexicon.Positive || emotion == lexicon.Negative {
				continue
			}
			ge := groupEmotion{key: k, emotion: emotion}
			c, ok := byKey[ge]
			if !ok {
				c = &models.EmotionCount{Key: k, Emotion: emotion}
				byKey[ge] = c
			}
			c.Count++
		}
	}

	counts := make([]*models.EmotionCount, 0, len(byKey))
	for _, c := range byKey {
		counts = append(counts, c)
	}
	return counts
}

// TopWords returns the n most frequent tokens tagged with the given polarity.
func (s *Scorer) TopWords(tokens []models.Token, polarity string, n int) []*models.WordCount {
	freq := make(map[string]int)
	for _, t := range tokens {
		for _, label := range s.polarity.Labels(t.Word) {
			if label == polarity {
				freq[t.Word]++
			}
		}
	}

	words := make([]*models.WordCount, 0, len(freq))
	for word, count := range freq {
		words = append(words, &models.WordCount{Word: word, Polarity: polarity, Count: count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})

	if len(words) > n {
		words = words[:n]
	}
	return words
}

// MatchedTokenCount reports how many tokens carry at least one polarity label.
func (s *Scorer) MatchedTokenCount(tokens []models.Token) int {
	matched := 0
	for _, t := range tokens {
		if s.polarity.Contains(t.Word) {
			matched++
		}
	}
	return matched
}

func sortByScore(groups []*models.ScoredGroup) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].SentimentScore != groups[j].SentimentScore {
			return groups[i].SentimentScore > groups[j].SentimentScore
		}
		return groups[i].Key < groups[j].Key
	})
}
