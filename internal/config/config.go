package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr    string
	CORSOrigins []string

	// Open Food Facts client
	OFFBaseURL   string
	OFFUserAgent string
	OFFTimeout   time.Duration
	OFFCacheTTL  time.Duration

	// Optional YAML file overriding the default score weights.
	WeightsFile string
}

func FromEnv() Config {
	return Config{
		HTTPAddr:     envOr("HTTP_ADDR", ":8000"),
		CORSOrigins:  csvOr("CORS_ORIGINS", "*"),
		OFFBaseURL:   envOr("OFF_BASE_URL", "https://world.openfoodfacts.org"),
		OFFUserAgent: envOr("OFF_USER_AGENT", "RealFoodScore/1.0"),
		OFFTimeout:   envSeconds("OFF_TIMEOUT_SEC", 10),
		OFFCacheTTL:  envSeconds("OFF_CACHE_TTL_SEC", 3600),
		WeightsFile:  os.Getenv("WEIGHTS_FILE"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envSeconds(k string, def int) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return time.Duration(def) * time.Second
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return time.Duration(def) * time.Second
	}
	return time.Duration(n) * time.Second
}

func csvOr(k, def string) []string {
	v := os.Getenv(k)
	if v == "" {
		v = def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
