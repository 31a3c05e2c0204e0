package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Drogon4231/portfolio/internal/portfolio"
)

type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Analytics AnalyticsConfig
	Admin     AdminConfig
	SMTP      SMTPConfig
	App       AppConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	TrustedProxies []string
	CORSOrigins    []string
}

type SiteConfig struct {
	// BasePath prefixes every static asset URL, e.g. "/harshithkantamneni.github.io/".
	BasePath     string
	PublicDir    string
	ResumeFiles  []string
	DefaultTrack portfolio.Track
	GitHubURL    string
	LinkedInURL  string
	ContactEmail string
}

type AnalyticsConfig struct {
	Enabled       bool
	DBPath        string
	RetentionDays int
}

type AdminConfig struct {
	Username string
	Password string
}

type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			GinMode:        getEnv("GIN_MODE", "debug"),
			TrustedProxies: getEnvAsList("TRUSTED_PROXIES", nil),
			CORSOrigins:    getEnvAsList("CORS_ORIGINS", []string{"*"}),
		},
		Site: SiteConfig{
			BasePath:     NormalizeBasePath(getEnv("BASE_PATH", "/")),
			PublicDir:    getEnv("PUBLIC_DIR", "./public"),
			ResumeFiles:  getEnvAsList("RESUME_FILES", []string{"resume.pdf"}),
			DefaultTrack: portfolio.ParseTrack(getEnv("DEFAULT_TRACK", ""), portfolio.TrackAll),
			GitHubURL:    getEnv("GITHUB_URL", "https://github.com/Drogon4231"),
			LinkedInURL:  getEnv("LINKEDIN_URL", "https://www.linkedin.com/in/harshithkantamneni"),
			ContactEmail: getEnv("CONTACT_EMAIL", ""),
		},
		Analytics: AnalyticsConfig{
			Enabled:       getEnvAsBool("ANALYTICS_ENABLED", true),
			DBPath:        getEnv("DB_PATH", "./data/portfolio.db"),
			RetentionDays: getEnvAsInt("VISITOR_RETENTION_DAYS", 365),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		SMTP: SMTPConfig{
			Host:    getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:    getEnv("SMTP_PORT", "587"),
			User:    os.Getenv("SMTP_USER"),
			Pass:    os.Getenv("SMTP_PASS"),
			ToEmail: os.Getenv("TO_EMAIL"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if cfg.SMTP.ToEmail == "" {
		cfg.SMTP.ToEmail = cfg.Site.ContactEmail
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test: %q", c.Server.GinMode)
	}

	if !strings.HasPrefix(c.Site.BasePath, "/") {
		return fmt.Errorf("BASE_PATH must start with '/': %q", c.Site.BasePath)
	}

	if !c.Site.DefaultTrack.Valid() {
		return fmt.Errorf("DEFAULT_TRACK %q is not a known track", c.Site.DefaultTrack)
	}

	if len(c.Site.ResumeFiles) == 0 {
		return fmt.Errorf("RESUME_FILES must name at least one file")
	}

	if c.Analytics.Enabled && c.Analytics.DBPath == "" {
		return fmt.Errorf("DB_PATH is required when analytics is enabled")
	}

	return nil
}

// AdminEnabled reports whether the admin dashboard should be mounted.
func (c *Config) AdminEnabled() bool {
	return c.Analytics.Enabled && c.Admin.Password != ""
}

// AssetURL joins the base path and an asset file name.
func (s SiteConfig) AssetURL(file string) string {
	return path.Join(s.BasePath, strings.TrimPrefix(file, "/"))
}

// ResumeURLs resolves every configured resume file against the base path.
func (s SiteConfig) ResumeURLs() []string {
	urls := make([]string, 0, len(s.ResumeFiles))
	for _, f := range s.ResumeFiles {
		urls = append(urls, s.AssetURL(f))
	}
	return urls
}

// NormalizeBasePath makes sure p starts and ends with a single slash.
// An empty value becomes "/".
func NormalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return "/"
	}
	p = "/" + strings.Trim(p, "/") + "/"
	return p
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
