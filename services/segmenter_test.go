package services

import (
	"fmt"
	"math"
	"testing"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
)

// blobProfiles builds three well-separated groups of reviewer profiles.
func blobProfiles() []*models.ReviewerProfile {
	var profiles []*models.ReviewerProfile
	blobs := []struct {
		label     string
		sentiment float64
		length    float64
		reviews   int
	}{
		{"happy", 10, 40, 8},
		{"neutral", 0, 15, 3},
		{"unhappy", -10, 60, 5},
	}

	for _, b := range blobs {
		for i := 0; i < 10; i++ {
			jitter := float64(i%5) * 0.1
			profiles = append(profiles, &models.ReviewerProfile{
				ReviewerID:          fmt.Sprintf("%s-%d", b.label, i),
				TotalReviews:        b.reviews,
				AvgSentiment:        b.sentiment + jitter,
				AvgReviewLength:     b.length + jitter,
				PositiveReviewCount: b.reviews / 2,
				NegativeReviewCount: b.reviews / 4,
			})
		}
	}
	return profiles
}

func TestSegmentIsDeterministicForFixedSeed(t *testing.T) {
	profiles := blobProfiles()

	s1 := NewSegmenter(3, 25, 100, 42, newTestLogger())
	s2 := NewSegmenter(3, 25, 100, 42, newTestLogger())

	first, _ := s1.Segment(profiles)
	second, _ := s2.Segment(profiles)

	if len(first) != len(second) {
		t.Fatalf("assignment counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ReviewerID != second[i].ReviewerID || first[i].Cluster != second[i].Cluster {
			t.Errorf("assignment %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSegmentSeparatesDistinctBlobs(t *testing.T) {
	s := NewSegmenter(3, 25, 100, 42, newTestLogger())
	assignments, summaries := s.Segment(blobProfiles())

	byBlob := map[string]map[int]int{}
	for _, a := range assignments {
		blob := a.ReviewerID[:len(a.ReviewerID)-2]
		if byBlob[blob] == nil {
			byBlob[blob] = map[int]int{}
		}
		byBlob[blob][a.Cluster]++
	}

	usedClusters := map[int]bool{}
	for blob, clusters := range byBlob {
		if len(clusters) != 1 {
			t.Errorf("blob %q split across clusters: %v", blob, clusters)
			continue
		}
		for c := range clusters {
			if usedClusters[c] {
				t.Errorf("cluster %d shared across blobs", c)
			}
			usedClusters[c] = true
		}
	}

	sizes := 0
	for _, sum := range summaries {
		sizes += sum.Size
	}
	if sizes != 30 {
		t.Errorf("summary sizes sum to %d, want 30", sizes)
	}
}

func TestSegmentExcludesNonFiniteProfiles(t *testing.T) {
	profiles := blobProfiles()
	profiles = append(profiles, &models.ReviewerProfile{
		ReviewerID:      "broken",
		AvgReviewLength: math.Inf(1),
	})

	s := NewSegmenter(3, 5, 100, 42, newTestLogger())
	assignments, _ := s.Segment(profiles)

	for _, a := range assignments {
		if a.ReviewerID == "broken" {
			t.Error("profile with infinite feature must be excluded from clustering")
		}
	}
	if len(assignments) != 30 {
		t.Errorf("assignments: got %d, want 30", len(assignments))
	}
}

func TestSegmentCapsKAtProfileCount(t *testing.T) {
	profiles := blobProfiles()[:2]

	s := NewSegmenter(3, 5, 100, 42, newTestLogger())
	assignments, summaries := s.Segment(profiles)

	if len(assignments) != 2 {
		t.Fatalf("assignments: got %d, want 2", len(assignments))
	}
	if len(summaries) != 2 {
		t.Errorf("summaries: got %d, want 2 (k capped)", len(summaries))
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	s := NewSegmenter(3, 5, 100, 42, newTestLogger())
	assignments, summaries := s.Segment(nil)
	if assignments != nil || summaries != nil {
		t.Error("empty input should produce no assignments or summaries")
	}
}
