package storage

import "github.com/abielli2020/Airbnb-Sentiment-Analysis/models"

// SummarySink is the interface any results backend must satisfy.
type SummarySink interface {
	WriteMonthly(groups []*models.ScoredGroup) error
	WriteSegments(profiles []*models.ReviewerProfile, assignments []*models.ClusterAssignment) error
	Close() error
}

// ReviewSource loads raw review rows for the pipeline.
type ReviewSource interface {
	ReadAll() ([]*models.RawReview, error)
}
