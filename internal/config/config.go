package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Telemetry TelemetryConfig
	Predictor PredictorConfig
	AI        AIConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port string
}

type TelemetryConfig struct {
	BaseURL string
	// 해석 티어(후보 경로)당 타임아웃 - tier 1이 무한 대기하면
	// 폴백 체인 전체가 막히기 때문에 반드시 상한을 둠
	TierTimeout time.Duration
}

type PredictorConfig struct {
	BaseURL string
}

type AIConfig struct {
	APIKey string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port: getenv("PORT", "8080"),
		},
		Telemetry: TelemetryConfig{
			BaseURL:     os.Getenv("TELEMETRY_DB_URL"),
			TierTimeout: getduration("TELEMETRY_TIMEOUT", 3*time.Second),
		},
		Predictor: PredictorConfig{
			BaseURL: getenv("PREDICTOR_URL", "http://grid-twin-predictor.grid-twin.svc:8000"),
		},
		AI: AIConfig{
			APIKey: os.Getenv("AI_API_KEY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitcsv(getenv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}

func splitcsv(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
