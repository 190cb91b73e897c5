package services

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/utils"
)

// Segmenter partitions reviewer profiles into k groups with k-means.
// Features are z-score standardized first; the run is deterministic for a
// fixed seed, and multiple random restarts guard against poor local optima.
// Cluster numbering itself is arbitrary.
type Segmenter struct {
	logger   *utils.Logger
	k        int
	restarts int
	maxIter  int
	seed     int64
}

// NewSegmenter creates a Segmenter with the given clustering parameters.
func NewSegmenter(k, restarts, maxIter int, seed int64, logger *utils.Logger) *Segmenter {
	if k < 1 {
		k = 1
	}
	if restarts < 1 {
		restarts = 1
	}
	if maxIter < 1 {
		maxIter = 1
	}
	return &Segmenter{logger: logger, k: k, restarts: restarts, maxIter: maxIter, seed: seed}
}

// Segment clusters the profiles and returns per-reviewer assignments plus a
// summary of each segment in original feature units. Profiles with
// non-finite features are excluded from the input set; k is capped at the
// number of usable profiles.
func (s *Segmenter) Segment(profiles []*models.ReviewerProfile) ([]*models.ClusterAssignment, []*models.SegmentSummary) {
	usable := FilterFinite(profiles)
	if len(usable) == 0 {
		s.logger.Warn("[segmenter] No usable profiles, skipping segmentation")
		return nil, nil
	}

	k := s.k
	if k > len(usable) {
		s.logger.Warn("[segmenter] Capping k from %d to %d (too few profiles)", k, len(usable))
		k = len(usable)
	}

	points := standardize(featureMatrix(usable))

	rng := rand.New(rand.NewSource(s.seed))
	var bestAssign []int
	bestCost := math.Inf(1)
	for restart := 0; restart < s.restarts; restart++ {
		assign, cost := s.lloyd(points, k, rng)
		if cost < bestCost {
			bestCost = cost
			bestAssign = assign
		}
	}

	assignments := make([]*models.ClusterAssignment, len(usable))
	for i, p := range usable {
		assignments[i] = &models.ClusterAssignment{ReviewerID: p.ReviewerID, Cluster: bestAssign[i]}
	}

	s.logger.Info("[segmenter] Clustered %d reviewers into %d segments (within-cluster SS %.4f)",
		len(usable), k, bestCost)
	return assignments, summarize(usable, bestAssign, k)
}

// lloyd runs one k-means restart: random distinct points as initial
// centroids, then assignment/update iterations until assignments stop
// changing or the iteration cap is hit. Returns the assignment vector and
// the total within-cluster sum of squares.
func (s *Segmenter) lloyd(points [][]float64, k int, rng *rand.Rand) ([]int, float64) {
	dim := len(points[0])

	centroids := make([][]float64, k)
	for i, idx := range rng.Perm(len(points))[:k] {
		centroids[i] = append([]float64(nil), points[idx]...)
	}

	assign := make([]int, len(points))
	for iter := 0; iter < s.maxIter; iter++ {
		changed := false
		for i, p := range points {
			best := nearest(p, centroids)
			if best != assign[i] {
				assign[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		for i := range sums {
			sums[i] = make([]float64, dim)
		}
		for i, p := range points {
			floats.Add(sums[assign[i]], p)
			counts[assign[i]]++
		}
		for i := range centroids {
			// An emptied cluster keeps its previous centroid.
			if counts[i] > 0 {
				floats.Scale(1/float64(counts[i]), sums[i])
				centroids[i] = sums[i]
			}
		}
	}

	cost := 0.0
	for i, p := range points {
		d := floats.Distance(p, centroids[assign[i]], 2)
		cost += d * d
	}
	return assign, cost
}

func nearest(p []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, c := range centroids {
		if d := floats.Distance(p, c, 2); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// featureMatrix extracts the numeric features of each profile.
func featureMatrix(profiles []*models.ReviewerProfile) [][]float64 {
	points := make([][]float64, len(profiles))
	for i, p := range profiles {
		points[i] = []float64{
			float64(p.TotalReviews),
			p.AvgSentiment,
			p.AvgReviewLength,
			float64(p.PositiveReviewCount),
			float64(p.NegativeReviewCount),
		}
	}
	return points
}

// standardize z-scores each feature column in place. A zero-variance column
// becomes all zeros.
func standardize(points [][]float64) [][]float64 {
	if len(points) == 0 {
		return points
	}
	dim := len(points[0])
	column := make([]float64, len(points))

	for j := 0; j < dim; j++ {
		for i := range points {
			column[i] = points[i][j]
		}
		mean := stat.Mean(column, nil)
		std := stat.StdDev(column, nil)

		for i := range points {
			if std == 0 || math.IsNaN(std) {
				points[i][j] = 0
			} else {
				points[i][j] = (points[i][j] - mean) / std
			}
		}
	}
	return points
}

func summarize(profiles []*models.ReviewerProfile, assign []int, k int) []*models.SegmentSummary {
	summaries := make([]*models.SegmentSummary, k)
	for i := range summaries {
		summaries[i] = &models.SegmentSummary{Cluster: i}
	}

	for i, p := range profiles {
		sum := summaries[assign[i]]
		sum.Size++
		sum.AvgSentiment += p.AvgSentiment
		sum.AvgReviewLength += p.AvgReviewLength
		sum.AvgTotalReviews += float64(p.TotalReviews)
	}
	for _, sum := range summaries {
		if sum.Size > 0 {
			sum.AvgSentiment /= float64(sum.Size)
			sum.AvgReviewLength /= float64(sum.Size)
			sum.AvgTotalReviews /= float64(sum.Size)
		}
	}
	return summaries
}
