package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	ReviewsCSVPath  string
	BingLexiconPath string
	NRCLexiconPath  string

	SummaryOutputDir string
	ChartOutputDir   string

	StoreEnabled     bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	ClusterCount    int
	KMeansRestarts  int
	KMeansMaxIter   int
	KMeansSeed      int64
	TopTermCount    int
	TopWordCount    int
	TopListingCount int

	Debug bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		ReviewsCSVPath:  getEnv("REVIEWS_CSV_PATH", "./data/reviews.csv"),
		BingLexiconPath: getEnv("BING_LEXICON_PATH", "./data/bing.csv"),
		NRCLexiconPath:  getEnv("NRC_LEXICON_PATH", "./data/nrc.csv"),

		SummaryOutputDir: getEnv("SUMMARY_OUTPUT_DIR", "./output"),
		ChartOutputDir:   getEnv("CHART_OUTPUT_DIR", "./output/charts"),

		StoreEnabled:     getEnvBool("STORE_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "analyst"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "analyst123"),
		PostgresDB:       getEnv("POSTGRES_DB", "review_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		ClusterCount:    getEnvInt("CLUSTER_COUNT", 3),
		KMeansRestarts:  getEnvInt("KMEANS_RESTARTS", 25),
		KMeansMaxIter:   getEnvInt("KMEANS_MAX_ITER", 100),
		KMeansSeed:      getEnvInt64("KMEANS_SEED", 42),
		TopTermCount:    getEnvInt("TOP_TERM_COUNT", 10),
		TopWordCount:    getEnvInt("TOP_WORD_COUNT", 10),
		TopListingCount: getEnvInt("TOP_LISTING_COUNT", 5),

		Debug: getEnvBool("DEBUG", false),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.ParseInt(val, 10, 64)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
