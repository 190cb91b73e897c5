package services

import (
	"math"
	"sort"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/utils"
)

// Profiler rolls reviews up into per-reviewer feature rows for segmentation.
type Profiler struct {
	logger *utils.Logger
}

// NewProfiler creates a Profiler with the given logger.
func NewProfiler(logger *utils.Logger) *Profiler {
	return &Profiler{logger: logger}
}

// Build computes one ReviewerProfile per reviewer. perReview holds the
// sentiment score of each cleaned review, indexed like reviews. Profiles
// containing non-finite features are dropped.
func (p *Profiler) Build(reviews []*models.Review, tokens []models.Token, perReview []int) []*models.ReviewerProfile {
	type rollup struct {
		reviews   int
		tokens    int
		sentiment int
		positive  int
		negative  int
	}
	byReviewer := make(map[string]*rollup)

	for i, r := range reviews {
		ru, ok := byReviewer[r.ReviewerID]
		if !ok {
			ru = &rollup{}
			byReviewer[r.ReviewerID] = ru
		}
		ru.reviews++
		ru.sentiment += perReview[i]
		if perReview[i] > 0 {
			ru.positive++
		} else if perReview[i] < 0 {
			ru.negative++
		}
	}

	for _, t := range tokens {
		if ru, ok := byReviewer[t.ReviewerID]; ok {
			ru.tokens++
		}
	}

	profiles := make([]*models.ReviewerProfile, 0, len(byReviewer))
	dropped := 0
	for reviewerID, ru := range byReviewer {
		profile := &models.ReviewerProfile{
			ReviewerID:          reviewerID,
			TotalReviews:        ru.reviews,
			AvgSentiment:        float64(ru.sentiment) / float64(ru.reviews),
			AvgReviewLength:     float64(ru.tokens) / float64(ru.reviews),
			PositiveReviewCount: ru.positive,
			NegativeReviewCount: ru.negative,
		}
		if !finiteProfile(profile) {
			dropped++
			continue
		}
		profiles = append(profiles, profile)
	}

	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ReviewerID < profiles[j].ReviewerID })

	p.logger.Info("[profiler] Built %d reviewer profiles (dropped %d non-finite)", len(profiles), dropped)
	return profiles
}

// FilterFinite returns only profiles whose numeric features are all finite.
func FilterFinite(profiles []*models.ReviewerProfile) []*models.ReviewerProfile {
	kept := make([]*models.ReviewerProfile, 0, len(profiles))
	for _, p := range profiles {
		if finiteProfile(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

func finiteProfile(p *models.ReviewerProfile) bool {
	for _, v := range []float64{p.AvgSentiment, p.AvgReviewLength} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
