package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/utils"
)

// Renderer draws the pipeline's PNG charts into an output directory.
type Renderer struct {
	dir    string
	logger *utils.Logger
}

// NewRenderer creates the chart output directory if needed.
func NewRenderer(dir string, logger *utils.Logger) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("charts: create output dir: %w", err)
	}
	return &Renderer{dir: dir, logger: logger}, nil
}

// RenderInput collects everything the chart set is drawn from.
type RenderInput struct {
	Monthly          []*models.ScoredGroup
	TopPositiveWords []*models.WordCount
	TopNegativeWords []*models.WordCount
	EmotionTotals    []*models.EmotionCount
	Profiles         []*models.ReviewerProfile
	Assignments      []*models.ClusterAssignment
	ClusterCount     int
}

// RenderAll draws every chart. The charts are independent outputs, so they
// render through a small worker pool; failures are logged, not fatal.
func (r *Renderer) RenderAll(in RenderInput) {
	pool := utils.NewWorkerPool(3)

	jobs := []struct {
		name string
		fn   func() error
	}{
		{"monthly_sentiment.png", func() error { return r.MonthlySentiment(in.Monthly) }},
		{"top_positive_words.png", func() error {
			return r.WordBars(in.TopPositiveWords, "Top Positive Words", "top_positive_words.png")
		}},
		{"top_negative_words.png", func() error {
			return r.WordBars(in.TopNegativeWords, "Top Negative Words", "top_negative_words.png")
		}},
		{"emotion_totals.png", func() error { return r.EmotionBars(in.EmotionTotals) }},
		{"reviewer_segments.png", func() error {
			return r.SegmentScatter(in.Profiles, in.Assignments, in.ClusterCount)
		}},
	}

	for _, job := range jobs {
		job := job
		pool.Submit(func() {
			if err := job.fn(); err != nil {
				r.logger.Error("[charts] %s: %v", job.name, err)
			} else {
				r.logger.Info("[charts] Rendered %s", filepath.Join(r.dir, job.name))
			}
		})
	}
	pool.Wait()
}

// MonthlySentiment draws the sentiment score per month as a line chart.
func (r *Renderer) MonthlySentiment(groups []*models.ScoredGroup) error {
	if len(groups) == 0 {
		return fmt.Errorf("no monthly data")
	}

	p := plot.New()
	p.Title.Text = "Review Sentiment by Month"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Sentiment score (positive − negative)"

	pts := make(plotter.XYs, len(groups))
	months := make([]string, len(groups))
	for i, g := range groups {
		pts[i].X = float64(i)
		pts[i].Y = float64(g.SentimentScore)
		months[i] = g.Key
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("line plot: %w", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line, plotter.NewGrid())
	p.NominalX(months...)

	return p.Save(8*vg.Inch, 4*vg.Inch, filepath.Join(r.dir, "monthly_sentiment.png"))
}

// WordBars draws a bar chart of tagged word counts.
func (r *Renderer) WordBars(words []*models.WordCount, title, filename string) error {
	if len(words) == 0 {
		return fmt.Errorf("no word data")
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Occurrences"

	values := make(plotter.Values, len(words))
	names := make([]string, len(words))
	for i, w := range words {
		values[i] = float64(w.Count)
		names[i] = w.Word
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = plotutil.Color(1)
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = -0.8

	return p.Save(8*vg.Inch, 4*vg.Inch, filepath.Join(r.dir, filename))
}

// EmotionBars draws the NRC emotion totals as a bar chart.
func (r *Renderer) EmotionBars(counts []*models.EmotionCount) error {
	if len(counts) == 0 {
		return fmt.Errorf("no emotion data")
	}

	p := plot.New()
	p.Title.Text = "Emotion Totals (NRC)"
	p.Y.Label.Text = "Tagged tokens"

	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		names[i] = c.Emotion
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = plotutil.Color(2)
	p.Add(bars)
	p.NominalX(names...)

	return p.Save(8*vg.Inch, 4*vg.Inch, filepath.Join(r.dir, "emotion_totals.png"))
}

// SegmentScatter draws reviewers as avg sentiment × avg review length, one
// glyph style per k-means segment.
func (r *Renderer) SegmentScatter(profiles []*models.ReviewerProfile, assignments []*models.ClusterAssignment, k int) error {
	if len(assignments) == 0 {
		return fmt.Errorf("no segment data")
	}

	byReviewer := make(map[string]*models.ReviewerProfile, len(profiles))
	for _, p := range profiles {
		byReviewer[p.ReviewerID] = p
	}

	clusters := make([]plotter.XYs, k)
	for _, a := range assignments {
		p, ok := byReviewer[a.ReviewerID]
		if !ok || a.Cluster < 0 || a.Cluster >= k {
			continue
		}
		clusters[a.Cluster] = append(clusters[a.Cluster], plotter.XY{
			X: p.AvgSentiment,
			Y: p.AvgReviewLength,
		})
	}

	p := plot.New()
	p.Title.Text = "Reviewer Segments"
	p.X.Label.Text = "Average sentiment per review"
	p.Y.Label.Text = "Average review length (tokens)"

	for i, pts := range clusters {
		if len(pts) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("scatter: %w", err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Shape = plotutil.Shape(i)
		p.Add(scatter)
		p.Legend.Add(fmt.Sprintf("segment %d", i), scatter)
	}
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 5*vg.Inch, filepath.Join(r.dir, "reviewer_segments.png"))
}
