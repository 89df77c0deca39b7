package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Port        string
	Env         string
	MongoURL    string
	Database    string
	RedisURL    string
	SecretKey   string
	TokenTTL    time.Duration
	CartTTL     time.Duration
	CorsOrigins []string
	DeliveryFee int64

	WatchChangeStreams bool

	Media MediaConfig
}

type MediaConfig struct {
	Provider     string
	CloudURL     string
	CloudName    string
	CloudAPIKey  string
	CloudSecret  string
	UploadPreset string
	CloudBaseURL string
	S3Bucket     string
	S3PublicURL  string
}

// LoadDotEnv reads .env from the working directory if one exists.
func LoadDotEnv(log *zap.Logger) {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		log.Info(".env file does not exist in the current working directory")
		return
	}
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("error loading .env file", zap.Error(err))
		return
	}
	log.Info(".env file loaded")
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8000"),
		Env:         getEnv("APP_ENV", "development"),
		MongoURL:    getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		Database:    getEnv("MONGODB_DATABASE", "foodie"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		SecretKey:   getEnv("SECRET_KEY", ""),
		TokenTTL:    getDuration("TOKEN_TTL", 24*time.Hour),
		CartTTL:     getDuration("CART_TTL", 12*time.Hour),
		CorsOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:9000")),
		DeliveryFee: getInt("DELIVERY_FEE", 300),

		WatchChangeStreams: getBool("WATCH_CHANGE_STREAMS", false),

		Media: MediaConfig{
			Provider:     getEnv("MEDIA_PROVIDER", "cloudinary"),
			CloudURL:     getEnv("CLOUDINARY_URL", ""),
			CloudName:    getEnv("CLOUDINARY_CLOUD_NAME", "diaf824lc"),
			CloudAPIKey:  getEnv("CLOUDINARY_API_KEY", ""),
			CloudSecret:  getEnv("CLOUDINARY_API_SECRET", ""),
			UploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", "vadvaxcz"),
			CloudBaseURL: getEnv("CLOUDINARY_BASE_URL", "https://api.cloudinary.com"),
			S3Bucket:     getEnv("S3_BUCKET", ""),
			S3PublicURL:  getEnv("S3_PUBLIC_BASE_URL", ""),
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func getInt(key string, defaultVal int64) int64 {
	n, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}

func getBool(key string, defaultVal bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
