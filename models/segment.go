package models

// ReviewerProfile is the per-reviewer feature row fed into segmentation.
// AvgReviewLength is measured in tokens per review.
type ReviewerProfile struct {
	ReviewerID          string
	TotalReviews        int
	AvgSentiment        float64
	AvgReviewLength     float64
	PositiveReviewCount int
	NegativeReviewCount int
}

// ClusterAssignment maps a reviewer to a k-means segment. Labels are
// arbitrary cluster indexes; only membership is meaningful.
type ClusterAssignment struct {
	ReviewerID string
	Cluster    int
}

// SegmentSummary describes one reviewer segment in original (unstandardized)
// feature units.
type SegmentSummary struct {
	Cluster         int
	Size            int
	AvgSentiment    float64
	AvgReviewLength float64
	AvgTotalReviews float64
}
