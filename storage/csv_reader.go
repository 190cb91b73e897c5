package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/utils"
)

// ReviewReader loads raw reviews from a CSV export. The file must carry a
// header naming at least listing_id, reviewer_id, date and comments; column
// order does not matter.
type ReviewReader struct {
	path   string
	logger *utils.Logger
}

// NewReviewReader creates a ReviewReader for the file at path.
func NewReviewReader(path string, logger *utils.Logger) *ReviewReader {
	return &ReviewReader{path: path, logger: logger}
}

// ReadAll reads every row into memory. Rows with fewer columns than the
// header are skipped; rows with empty comments pass through untouched and
// are dropped later by the normalizer.
func (r *ReviewReader) ReadAll() ([]*models.RawReview, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var reviews []*models.RawReview
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row: %w", err)
		}
		if len(record) <= cols.max() {
			skipped++
			continue
		}

		reviews = append(reviews, &models.RawReview{
			ListingID:  record[cols.listing],
			ReviewerID: record[cols.reviewer],
			RawDate:    record[cols.date],
			Comment:    record[cols.comment],
		})
	}

	if skipped > 0 {
		r.logger.Warn("[loader] Skipped %d short rows in %s", skipped, r.path)
	}
	r.logger.Info("[loader] Loaded %d raw reviews from %s", len(reviews), r.path)
	return reviews, nil
}

type columnIndex struct {
	listing  int
	reviewer int
	date     int
	comment  int
}

func (c columnIndex) max() int {
	max := c.listing
	for _, v := range []int{c.reviewer, c.date, c.comment} {
		if v > max {
			max = v
		}
	}
	return max
}

func resolveColumns(header []string) (columnIndex, error) {
	cols := columnIndex{listing: -1, reviewer: -1, date: -1, comment: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "listing_id":
			cols.listing = i
		case "reviewer_id":
			cols.reviewer = i
		case "date":
			cols.date = i
		case "comments", "comment":
			cols.comment = i
		}
	}

	missing := []string{}
	if cols.listing < 0 {
		missing = append(missing, "listing_id")
	}
	if cols.reviewer < 0 {
		missing = append(missing, "reviewer_id")
	}
	if cols.date < 0 {
		missing = append(missing, "date")
	}
	if cols.comment < 0 {
		missing = append(missing, "comments")
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("csv: header missing columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}
