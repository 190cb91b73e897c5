package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/bbalet/stopwords"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/utils"
)

// nonLetterRegexp matches anything that is not a lowercase letter or
// whitespace; applied after lowercasing it strips punctuation and digits.
var nonLetterRegexp = regexp.MustCompile(`[^a-z\s]+`)

const dateLayout = "2006-01-02"

// Normalizer transforms RawReviews into clean Reviews and a flat token table.
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Clean processes raw review rows and returns cleaned records. Rows with
// missing comment text are dropped, exact duplicate rows are skipped, and the
// year-month bucket is derived from the date (empty when unparseable).
func (n *Normalizer) Clean(raw []*models.RawReview) []*models.Review {
	seen := utils.NewSeenSet()
	result := make([]*models.Review, 0, len(raw))

	var badDates int
	for _, r := range raw {
		comment := normaliseComment(r.Comment)
		if comment == "" {
			n.logger.Debug("[normalizer] Dropping review with empty comment (listing %s)", r.ListingID)
			continue
		}

		key := r.ListingID + "|" + r.ReviewerID + "|" + strings.TrimSpace(r.RawDate) + "|" + comment
		if !seen.Add(key) {
			n.logger.Debug("[normalizer] Duplicate review skipped (listing %s, reviewer %s)", r.ListingID, r.ReviewerID)
			continue
		}

		review := &models.Review{
			ListingID:  strings.TrimSpace(r.ListingID),
			ReviewerID: strings.TrimSpace(r.ReviewerID),
			Comment:    comment,
		}

		if date, err := time.Parse(dateLayout, strings.TrimSpace(r.RawDate)); err == nil {
			review.Date = date
			review.YearMonth = date.Format("2006-01")
		} else {
			badDates++
		}

		result = append(result, review)
	}

	n.logger.Info("[normalizer] Cleaned %d → %d reviews (dropped %d, unparseable dates %d)",
		len(raw), len(result), len(raw)-len(result), badDates)
	return result
}

// Tokenize splits cleaned reviews into the flat token table, removing
// English stop words. Each token keeps back-references to its review.
func (n *Normalizer) Tokenize(reviews []*models.Review) []models.Token {
	var tokens []models.Token

	for i, r := range reviews {
		kept := stopwords.CleanString(r.Comment, "en", false)
		for _, word := range strings.Fields(kept) {
			tokens = append(tokens, models.Token{
				Review:     i,
				Word:       word,
				ListingID:  r.ListingID,
				ReviewerID: r.ReviewerID,
				YearMonth:  r.YearMonth,
			})
		}
	}

	n.logger.Info("[normalizer] Tokenized %d reviews into %d tokens", len(reviews), len(tokens))
	return tokens
}

// normaliseComment lowercases the text, strips punctuation and digits and
// collapses internal whitespace.
func normaliseComment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonLetterRegexp.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
