package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/footynet/footynet/internal/platform/logging"
	"github.com/footynet/footynet/internal/platform/resilience"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	DBURL                      string
	DBDisablePreparedBinary    bool
	CacheTTL                   time.Duration
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	JWTSecret                  string
	JWTTokenTTL                time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PlacesBaseURL              string
	PlacesAPIKey               string
	PlacesTimeout              time.Duration
	PlacesMaxRetries           int
	PlacesCircuit              resilience.CircuitBreakerConfig
	GeoIPBaseURL               string
	GeoIPTimeout               time.Duration
	GeoIPCircuit               resilience.CircuitBreakerConfig
	MailerEnabled              bool
	MailerBaseURL              string
	MailerToken                string
	MailerFromAddress          string
	MailerTimeout              time.Duration
	MailerCircuit              resilience.CircuitBreakerConfig
	SweepEnabled               bool
	SweepInterval              time.Duration
	SweepWorkers               int
	LogLevel                   logging.Level
}

func Load() (Config, error) {
	// Missing .env files are fine, real environments set variables directly.
	_ = godotenv.Load()

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := getEnvAsBool("UPTRACE_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := getEnvAsBool("UPTRACE_LOGS_ENABLED", true)
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := getEnvAsBool("PPROF_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := getEnvAsBool("PYROSCOPE_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	jwtTokenTTL, err := getEnvAsDuration("AUTH_TOKEN_TTL", "24h")
	if err != nil {
		return Config{}, err
	}
	if jwtTokenTTL <= 0 {
		return Config{}, fmt.Errorf("AUTH_TOKEN_TTL must be > 0")
	}
	jwtSecret := strings.TrimSpace(getEnv("AUTH_JWT_SECRET", ""))
	if jwtSecret == "" {
		if appEnv == EnvProd {
			return Config{}, fmt.Errorf("AUTH_JWT_SECRET is required when APP_ENV=prod")
		}
		jwtSecret = "footynet-dev-secret"
	}

	placesTimeout, err := getEnvAsDuration("PLACES_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	if placesTimeout <= 0 {
		return Config{}, fmt.Errorf("PLACES_TIMEOUT must be > 0")
	}
	placesMaxRetries, err := getEnvAsInt("PLACES_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse PLACES_MAX_RETRIES: %w", err)
	}
	if placesMaxRetries < 0 {
		return Config{}, fmt.Errorf("PLACES_MAX_RETRIES must be >= 0")
	}
	placesCircuit, err := loadCircuitConfig("PLACES")
	if err != nil {
		return Config{}, err
	}

	geoIPTimeout, err := getEnvAsDuration("GEOIP_TIMEOUT", "5s")
	if err != nil {
		return Config{}, err
	}
	if geoIPTimeout <= 0 {
		return Config{}, fmt.Errorf("GEOIP_TIMEOUT must be > 0")
	}
	geoIPCircuit, err := loadCircuitConfig("GEOIP")
	if err != nil {
		return Config{}, err
	}

	mailerEnabled, err := getEnvAsBool("MAILER_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	mailerBaseURL := strings.TrimSpace(getEnv("MAILER_BASE_URL", ""))
	mailerToken := strings.TrimSpace(getEnv("MAILER_TOKEN", ""))
	mailerFromAddress := strings.TrimSpace(getEnv("MAILER_FROM_ADDRESS", "bookings@footynet.app"))
	if mailerEnabled {
		if mailerBaseURL == "" {
			return Config{}, fmt.Errorf("MAILER_BASE_URL is required when MAILER_ENABLED=true")
		}
		if mailerToken == "" {
			return Config{}, fmt.Errorf("MAILER_TOKEN is required when MAILER_ENABLED=true")
		}
	}
	mailerTimeout, err := getEnvAsDuration("MAILER_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	if mailerTimeout <= 0 {
		return Config{}, fmt.Errorf("MAILER_TIMEOUT must be > 0")
	}
	mailerCircuit, err := loadCircuitConfig("MAILER")
	if err != nil {
		return Config{}, err
	}

	sweepEnabled, err := getEnvAsBool("SWEEP_ENABLED", true)
	if err != nil {
		return Config{}, err
	}
	sweepInterval, err := getEnvAsDuration("SWEEP_INTERVAL", "10m")
	if err != nil {
		return Config{}, err
	}
	if sweepInterval <= 0 {
		return Config{}, fmt.Errorf("SWEEP_INTERVAL must be > 0")
	}
	sweepWorkers, err := getEnvAsInt("SWEEP_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SWEEP_WORKERS: %w", err)
	}
	if sweepWorkers < 1 {
		return Config{}, fmt.Errorf("SWEEP_WORKERS must be >= 1")
	}

	cacheTTL, err := getEnvAsDuration("CACHE_TTL", "60s")
	if err != nil {
		return Config{}, err
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}

	dbDisablePreparedBinary, err := getEnvAsBool("DB_DISABLE_PREPARED_BINARY_RESULT", true)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "footynet-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                      getEnv("DB_URL", ""),
		DBDisablePreparedBinary:    dbDisablePreparedBinary,
		CacheTTL:                   cacheTTL,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		JWTSecret:                  jwtSecret,
		JWTTokenTTL:                jwtTokenTTL,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		PlacesBaseURL:              strings.TrimSpace(getEnv("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api")),
		PlacesAPIKey:               strings.TrimSpace(getEnv("PLACES_API_KEY", "")),
		PlacesTimeout:              placesTimeout,
		PlacesMaxRetries:           placesMaxRetries,
		PlacesCircuit:              placesCircuit,
		GeoIPBaseURL:               strings.TrimSpace(getEnv("GEOIP_BASE_URL", "http://ip-api.com/json")),
		GeoIPTimeout:               geoIPTimeout,
		GeoIPCircuit:               geoIPCircuit,
		MailerEnabled:              mailerEnabled,
		MailerBaseURL:              mailerBaseURL,
		MailerToken:                mailerToken,
		MailerFromAddress:          mailerFromAddress,
		MailerTimeout:              mailerTimeout,
		MailerCircuit:              mailerCircuit,
		SweepEnabled:               sweepEnabled,
		SweepInterval:              sweepInterval,
		SweepWorkers:               sweepWorkers,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

// loadCircuitConfig reads the four <PREFIX>_CIRCUIT_* variables shared by
// every outbound HTTP client.
func loadCircuitConfig(prefix string) (resilience.CircuitBreakerConfig, error) {
	defaults := resilience.DefaultCircuitBreakerConfig()

	enabled, err := getEnvAsBool(prefix+"_CIRCUIT_ENABLED", defaults.Enabled)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, err
	}
	failureThreshold, err := getEnvAsInt(prefix+"_CIRCUIT_FAILURE_COUNT", defaults.FailureThreshold)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %s_CIRCUIT_FAILURE_COUNT: %w", prefix, err)
	}
	if failureThreshold < 1 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("%s_CIRCUIT_FAILURE_COUNT must be >= 1", prefix)
	}
	openTimeout, err := getEnvAsDuration(prefix+"_CIRCUIT_OPEN_TIMEOUT", defaults.OpenTimeout.String())
	if err != nil {
		return resilience.CircuitBreakerConfig{}, err
	}
	if openTimeout <= 0 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("%s_CIRCUIT_OPEN_TIMEOUT must be > 0", prefix)
	}
	halfOpenMaxReq, err := getEnvAsInt(prefix+"_CIRCUIT_HALF_OPEN_MAX_REQ", defaults.HalfOpenMaxReq)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %s_CIRCUIT_HALF_OPEN_MAX_REQ: %w", prefix, err)
	}
	if halfOpenMaxReq < 1 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("%s_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1", prefix)
	}

	return resilience.CircuitBreakerConfig{
		Enabled:          enabled,
		FailureThreshold: failureThreshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpenMaxReq,
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}

	return out, nil
}

func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
