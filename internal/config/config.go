package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	DataDir     string // corpus CSVs live here
	ArtifactDir string // badger artifact store

	TopN        int
	BoostFactor float64
	MatchCutoff float64
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8084"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	topN, _ := strconv.Atoi(getenv("TOP_N", "3"))
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		MaxUploadMB:  mb,
		LogFile:      getenv("LOG_FILE", "logs/smartcart-service.log"),
		DataDir:      getenv("DATA_DIR", "data"),
		ArtifactDir:  getenv("ARTIFACT_DIR", "artifacts"),
		TopN:         topN,
		BoostFactor:  getfloat("BOOST_FACTOR", 1.2),
		MatchCutoff:  getfloat("MATCH_CUTOFF", 0.75),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(k), 64)
	if err != nil {
		return def
	}
	return f
}
