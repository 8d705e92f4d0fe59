package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fakhrymubarak/kloudly/internal/weatherapi"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// Warnings raised while config loads are held until the logger exists,
// since the logger itself is built from config.
var (
	warnMu      sync.Mutex
	loggerReady bool
	pending     []pendingWarning
)

type pendingWarning struct {
	msg string
	kv  []any
}

func warn(msg string, kv ...any) {
	warnMu.Lock()
	defer warnMu.Unlock()
	if !loggerReady {
		pending = append(pending, pendingWarning{msg: msg, kv: kv})
		return
	}
	logger.Warnw(msg, kv...)
}

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func setDefaults() {
	viper.SetDefault("openweathermap.base_url", "https://api.openweathermap.org/data/2.5")
	viper.SetDefault("openweathermap.geo_url", "https://api.openweathermap.org/geo/1.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.gin_mode", "release")
	viper.SetDefault("server.read_header_timeout", "15s")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "10s")
	viper.SetDefault("server.idle_timeout", "30s")
	viper.SetDefault("server.shutdown_timeout", "10s")
	viper.SetDefault("log.mode", "development")
}

func initConfig() {
	once.Do(func() {
		setDefaults()
		root, err := getProjectRoot()
		if err != nil {
			warn("Error finding project root, using defaults", "error", err)
			return
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			warn("Error reading config file", "error", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			if err = viper.MergeInConfig(); err != nil {
				warn("Error reading test config file", "error", err)
			}
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func GetOpenWeatherBaseURL() string {
	initConfig()
	return viper.GetString("openweathermap.base_url")
}

func GetOpenWeatherGeoURL() string {
	initConfig()
	return viper.GetString("openweathermap.geo_url")
}

func GetOpenWeatherMapAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv("OPENWEATHERMAP_API_KEY")
}

// GetWeatherAPIConfig assembles the explicit client configuration from config.yaml and the environment.
func GetWeatherAPIConfig() weatherapi.Config {
	return weatherapi.Config{
		BaseURL: GetOpenWeatherBaseURL(),
		GeoURL:  GetOpenWeatherGeoURL(),
		APIKey:  GetOpenWeatherMapAPIKey(),
	}
}

func GetServerPort() string {
	initConfig()
	return viper.GetString("server.port")
}

func GetGinMode() string {
	initConfig()
	return viper.GetString("server.gin_mode")
}

func GetServerTimeout(key string) string {
	initConfig()
	return viper.GetString("server." + key)
}

// GetServerTimeoutDuration parses server.<key> as a duration, falling back to def when unset or invalid.
func GetServerTimeoutDuration(key string, def time.Duration) time.Duration {
	durStr := GetServerTimeout(key)
	if durStr == "" {
		return def
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		GetLogger().Warnw("Invalid server timeout, using default", "key", key, "value", durStr, "default", def)
		return def
	}
	return dur
}

func GetLogMode() string {
	initConfig()
	return viper.GetString("log.mode")
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

// GetLogger returns the process-wide logger, loading config first so that
// log.mode=production selects the JSON production logger.
func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		var (
			l   *zap.Logger
			err error
		)
		if GetLogMode() == "production" {
			l, err = zap.NewProduction()
		} else {
			l, err = zap.NewDevelopment()
		}
		if err != nil {
			panic(err)
		}

		warnMu.Lock()
		defer warnMu.Unlock()
		logger = l.Sugar()
		loggerReady = true
		for _, w := range pending {
			logger.Warnw(w.msg, w.kv...)
		}
		pending = nil
	})
	return logger
}

// ResetLoggerForTest drops the logger so the next GetLogger rebuilds it. Use only in tests.
func ResetLoggerForTest() {
	warnMu.Lock()
	defer warnMu.Unlock()
	loggerOnce = sync.Once{}
	logger = nil
	loggerReady = false
}
