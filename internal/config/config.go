package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	defaultRunAddress     = ":8080"
	defaultBackendURL     = "http://localhost:8000"
	defaultBackendKeyword = "default"
	defaultJWTSecret      = "default-secret-key-change-in-production"
	defaultMaxUploadSize  = 32 << 20
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string // Адрес и порт запуска сервиса
	DatabaseURI string // URI подключения к БД; пустой - сессии в памяти
	LogLevel    string // Уровень логирования

	// Бэкенд офиса
	BackendURL     string        // Базовый адрес API бэкенда
	BackendKeyword string        // Значение параметра local_kw
	BackendTimeout time.Duration // Таймаут запроса к бэкенду

	// Сессии
	JWTSecret  string        // Секретный ключ для JWT
	SessionTTL time.Duration // Время жизни сессии и ее токена

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров импорта
	WorkerQueueSize    int           // Размер очереди импорта
	WorkerScanInterval time.Duration // Интервал очистки истекших сессий

	MaxUploadSize int64 // Максимальный размер загружаемого файла, байт
}

// Load загружает конфигурацию из переменных окружения и флагов командной строки
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

func defaults() *Config {
	return &Config{
		RunAddress:         defaultRunAddress,
		LogLevel:           "info",
		BackendURL:         defaultBackendURL,
		BackendKeyword:     defaultBackendKeyword,
		BackendTimeout:     10 * time.Second,
		JWTSecret:          defaultJWTSecret,
		SessionTTL:         24 * time.Hour,
		WorkerPoolSize:     2,
		WorkerQueueSize:    16,
		WorkerScanInterval: time.Minute,
		MaxUploadSize:      defaultMaxUploadSize,
	}
}

func load(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("cargo-office", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	fs.StringVar(&cfg.BackendURL, "b", cfg.BackendURL, "office backend base URL")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI for session persistence")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if v, ok := lookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = v
	}
	if v, ok := lookupEnv("BACKEND_URL"); ok {
		cfg.BackendURL = v
	}
	if v, ok := lookupEnv("BACKEND_KEYWORD"); ok && v != "" {
		cfg.BackendKeyword = v
	}
	if v, ok := lookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = v
	}
	// JWT секрет только из env, не из флагов
	if v, ok := lookupEnv("JWT_SECRET"); ok && v != "" {
		cfg.JWTSecret = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	var err error
	if cfg.BackendTimeout, err = envDuration(lookupEnv, "BACKEND_TIMEOUT", cfg.BackendTimeout); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = envDuration(lookupEnv, "SESSION_TTL", cfg.SessionTTL); err != nil {
		return nil, err
	}
	if cfg.WorkerScanInterval, err = envDuration(lookupEnv, "WORKER_SCAN_INTERVAL", cfg.WorkerScanInterval); err != nil {
		return nil, err
	}
	if cfg.WorkerPoolSize, err = envInt(lookupEnv, "WORKER_POOL_SIZE", cfg.WorkerPoolSize); err != nil {
		return nil, err
	}
	if cfg.WorkerQueueSize, err = envInt(lookupEnv, "WORKER_QUEUE_SIZE", cfg.WorkerQueueSize); err != nil {
		return nil, err
	}
	maxUpload, err := envInt(lookupEnv, "MAX_UPLOAD_SIZE", int(cfg.MaxUploadSize))
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadSize = int64(maxUpload)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.RunAddress == "" {
		return fmt.Errorf("run address is required (use -a flag or RUN_ADDRESS env)")
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend URL %q is invalid (use -b flag or BACKEND_URL env)", c.BackendURL)
	}
	return nil
}

func envDuration(lookupEnv func(string) (string, bool), key string, def time.Duration) (time.Duration, error) {
	v, ok := lookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, v)
	}
	return d, nil
}

func envInt(lookupEnv func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, v)
	}
	return n, nil
}
