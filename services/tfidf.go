package services

import (
	"math"
	"sort"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/utils"
)

// TermScorer computes TF-IDF weights treating each year-month bucket as one
// document. Words appearing in every month weigh zero (IDF = log(N/df)).
type TermScorer struct {
	logger *utils.Logger
}

// NewTermScorer creates a TermScorer with the given logger.
func NewTermScorer(logger *utils.Logger) *TermScorer {
	return &TermScorer{logger: logger}
}

// monthDocs groups token words into per-month documents. Tokens without a
// month bucket are excluded.
func monthDocs(tokens []models.Token) map[string][]string {
	docs := make(map[string][]string)
	for _, t := range tokens {
		if t.YearMonth == "" {
			continue
		}
		docs[t.YearMonth] = append(docs[t.YearMonth], t.Word)
	}
	return docs
}

// TopTermsByMonth returns the n highest TF-IDF terms for each month.
func (ts *TermScorer) TopTermsByMonth(tokens []models.Token, n int) map[string][]*models.TermWeight {
	docs := monthDocs(tokens)
	idf := inverseDocFrequency(docs)

	result := make(map[string][]*models.TermWeight, len(docs))
	for month, words := range docs {
		result[month] = topN(termWeights(words, idf), n)
	}

	ts.logger.Info("[terms] Computed TF-IDF terms for %d months (%d vocabulary terms)", len(docs), len(idf))
	return result
}

// TopTerms returns the n terms with the highest total TF-IDF weight summed
// across all month documents.
func (ts *TermScorer) TopTerms(tokens []models.Token, n int) []*models.TermWeight {
	docs := monthDocs(tokens)
	idf := inverseDocFrequency(docs)

	totals := make(map[string]float64)
	for _, words := range docs {
		for _, tw := range termWeights(words, idf) {
			totals[tw.Term] += tw.Weight
		}
	}

	weights := make([]*models.TermWeight, 0, len(totals))
	for term, w := range totals {
		weights = append(weights, &models.TermWeight{Term: term, Weight: w})
	}
	return topN(weights, n)
}

// inverseDocFrequency returns log(N/df) per word across the month documents.
func inverseDocFrequency(docs map[string][]string) map[string]float64 {
	docFreq := make(map[string]int)
	for _, words := range docs {
		seen := make(map[string]struct{})
		for _, w := range words {
			seen[w] = struct{}{}
		}
		for w := range seen {
			docFreq[w]++
		}
	}

	idf := make(map[string]float64, len(docFreq))
	for w, df := range docFreq {
		idf[w] = math.Log(float64(len(docs)) / float64(df))
	}
	return idf
}

// termWeights computes tf-idf for one document.
func termWeights(words []string, idf map[string]float64) []*models.TermWeight {
	if len(words) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, w := range words {
		counts[w]++
	}

	weights := make([]*models.TermWeight, 0, len(counts))
	for w, c := range counts {
		tf := float64(c) / float64(len(words))
		weights = append(weights, &models.TermWeight{Term: w, Weight: tf * idf[w]})
	}
	return weights
}

func topN(weights []*models.TermWeight, n int) []*models.TermWeight {
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Weight != weights[j].Weight {
			return weights[i].Weight > weights[j].Weight
		}
		return weights[i].Term < weights[j].Term
	})
	if len(weights) > n {
		weights = weights[:n]
	}
	return weights
}
