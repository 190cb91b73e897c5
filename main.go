package main

import (
	"fmt"
	"os"

	"github.com/abielli2020/Airbnb-Sentiment-Analysis/charts"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/config"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/lexicon"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/models"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/services"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/storage"
	"github.com/abielli2020/Airbnb-Sentiment-Analysis/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()
	logger.SetDebug(cfg.Debug)

	logger.Info("=== Airbnb Review Sentiment Analysis starting ===")
	logger.Info("Config — reviews: %s | clusters: %d | restarts: %d | seed: %d",
		cfg.ReviewsCSVPath, cfg.ClusterCount, cfg.KMeansRestarts, cfg.KMeansSeed)

	bing, err := lexicon.LoadFile("bing", cfg.BingLexiconPath)
	if err != nil {
		logger.Error("Failed to load Bing lexicon: %v", err)
		os.Exit(1)
	}
	nrc, err := lexicon.LoadFile("nrc", cfg.NRCLexiconPath)
	if err != nil {
		logger.Error("Failed to load NRC lexicon: %v", err)
		os.Exit(1)
	}
	logger.Info("Lexicons loaded — bing: %d words | nrc: %d words", bing.Len(), nrc.Len())

	reader := storage.NewReviewReader(cfg.ReviewsCSVPath, logger)
	rawReviews, err := reader.ReadAll()
	if err != nil {
		logger.Error("Failed to load reviews: %v", err)
		os.Exit(1)
	}
	if len(rawReviews) == 0 {
		logger.Error("No reviews in input file. Exiting.")
		os.Exit(1)
	}

	normalizer := services.NewNormalizer(logger)
	reviews := normalizer.Clean(rawReviews)
	if len(reviews) == 0 {
		logger.Error("All reviews were dropped during cleaning. Exiting.")
		os.Exit(1)
	}
	tokens := normalizer.Tokenize(reviews)

	scorer := services.NewScorer(bing, nrc, logger)
	monthly := scorer.ScoreByMonth(tokens)
	byListing := scorer.ScoreByListing(tokens)
	byReviewer := scorer.ScoreByReviewer(tokens)
	perReview := scorer.ScoreByReview(tokens, len(reviews))
	topPositive := scorer.TopWords(tokens, lexicon.Positive, cfg.TopWordCount)
	topNegative := scorer.TopWords(tokens, lexicon.Negative, cfg.TopWordCount)
	emotionTotals := scorer.EmotionTotals(tokens)
	monthlyEmotions := scorer.EmotionsByMonth(tokens)

	termScorer := services.NewTermScorer(logger)
	topTerms := termScorer.TopTerms(tokens, cfg.TopTermCount)
	monthlyTerms := termScorer.TopTermsByMonth(tokens, cfg.TopTermCount)

	profiler := services.NewProfiler(logger)
	profiles := profiler.Build(reviews, tokens, perReview)

	segmenter := services.NewSegmenter(cfg.ClusterCount, cfg.KMeansRestarts,
		cfg.KMeansMaxIter, cfg.KMeansSeed, logger)
	assignments, segments := segmenter.Segment(profiles)

	csvWriter, err := storage.NewCSVWriter(cfg.SummaryOutputDir)
	if err != nil {
		logger.Error("Failed to create summary writer: %v", err)
		os.Exit(1)
	}
	writeSummaries(csvWriter, monthly, profiles, assignments, logger, "CSV")
	if err := csvWriter.WriteMonthlyEmotions(monthlyEmotions); err != nil {
		logger.Error("CSV monthly emotions write failed: %v", err)
	}
	if err := csvWriter.WriteMonthlyTerms(monthlyTerms); err != nil {
		logger.Error("CSV monthly terms write failed: %v", err)
	}

	if cfg.StoreEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			logger.Error("Make sure Docker is running: docker compose up -d")
		} else {
			writeSummaries(pgWriter, monthly, profiles, assignments, logger, "PostgreSQL")
			defer pgWriter.Close()
		}
	}

	renderer, err := charts.NewRenderer(cfg.ChartOutputDir, logger)
	if err != nil {
		logger.Error("Failed to create chart renderer: %v", err)
	} else {
		renderer.RenderAll(charts.RenderInput{
			Monthly:          monthly,
			TopPositiveWords: topPositive,
			TopNegativeWords: topNegative,
			EmotionTotals:    emotionTotals,
			Profiles:         profiles,
			Assignments:      assignments,
			ClusterCount:     cfg.ClusterCount,
		})
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(services.ReportInput{
		TotalReviews:     len(reviews),
		DroppedReviews:   len(rawReviews) - len(reviews),
		Tokens:           tokens,
		MatchedTokens:    scorer.MatchedTokenCount(tokens),
		Monthly:          monthly,
		ByListing:        byListing,
		ByReviewer:       byReviewer,
		TopPositiveWords: topPositive,
		TopNegativeWords: topNegative,
		EmotionTotals:    emotionTotals,
		TopTerms:         topTerms,
		Segments:         segments,
		TopListingCount:  cfg.TopListingCount,
	})
	insightSvc.Print(report)

	fmt.Printf("  Done. Summaries → %s | Charts → %s\n\n",
		cfg.SummaryOutputDir, cfg.ChartOutputDir)
}

func writeSummaries(sink storage.SummarySink, monthly []*models.ScoredGroup,
	profiles []*models.ReviewerProfile, assignments []*models.ClusterAssignment,
	logger *utils.Logger, label string) {

	if err := sink.WriteMonthly(monthly); err != nil {
		logger.Error("%s monthly write failed: %v", label, err)
	} else {
		logger.Info("Monthly sentiment stored (%s)", label)
	}
	if err := sink.WriteSegments(profiles, assignments); err != nil {
		logger.Error("%s segments write failed: %v", label, err)
	} else {
		logger.Info("Reviewer segments stored (%s)", label)
	}
}
