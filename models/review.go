package models

import "time"

// RawReview holds one unprocessed row from the reviews CSV export.
// Values are kept as strings before any cleaning or transformation.
type RawReview struct {
	ListingID  string
	ReviewerID string
	RawDate    string
	Comment    string
}

// Review is the cleaned, validated record the pipeline works on.
// YearMonth is derived from the review date ("2016-07"); it is empty when
// the date could not be parsed, and such reviews are excluded from
// time-bucketed aggregations but retained everywhere else.
type Review struct {
	ListingID  string
	ReviewerID string
	Date       time.Time
	YearMonth  string
	Comment    string
}

// Token is one normalized word in the flat token table, carrying
// back-references to the review it came from. Review is the index of the
// owning review in the cleaned slice.
type Token struct {
	Review     int
	Word       string
	ListingID  string
	ReviewerID string
	YearMonth  string
}
