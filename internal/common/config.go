package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Mail     MailConfig
	Batch    BatchConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds text-acquisition configuration
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	DPI           int
	PSM           int
	MinTextLength int
	MaxPages      int
}

// MailConfig holds the IMAP message-source configuration
type MailConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	Mailbox      string
	SearchFrom   string // semicolon-separated sender filters
	DateStart    string // YYYY-MM-DD
	DateEnd      string // YYYY-MM-DD, empty -> today
	MarkAsSeen   bool
	HistoryFile  string
	RetryCount   int
	RetryBackoff time.Duration
}

// BatchConfig holds the batch-loop configuration
type BatchConfig struct {
	DownloadDir  string
	DedupStore   string
	RegistryFile string // optional party-registry override (JSON)
	Workers      int    // concurrent text acquisitions
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			PSM:           getEnvAsInt("OCR_PSM", 4),
			MinTextLength: getEnvAsInt("OCR_MIN_TEXT_LENGTH", 50),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		Mail: MailConfig{
			Host:         getEnv("IMAP_HOST", "imap.gmail.com"),
			Port:         getEnvAsInt("IMAP_PORT", 993),
			Username:     getEnv("IMAP_USERNAME", ""),
			Password:     getEnv("IMAP_PASSWORD", ""),
			Mailbox:      getEnv("IMAP_MAILBOX", "INBOX"),
			SearchFrom:   getEnv("IMAP_SEARCH_FROM", ""),
			DateStart:    getEnv("IMAP_DATE_START", ""),
			DateEnd:      getEnv("IMAP_DATE_END", ""),
			MarkAsSeen:   getEnvAsBool("IMAP_MARK_AS_SEEN", true),
			HistoryFile:  getEnv("IMAP_HISTORY_FILE", "processed_emails.json"),
			RetryCount:   getEnvAsInt("IMAP_RETRY_COUNT", 3),
			RetryBackoff: getEnvAsDuration("IMAP_RETRY_BACKOFF", 5*time.Second),
		},
		Batch: BatchConfig{
			DownloadDir:  getEnv("INVOICE_DOWNLOAD_DIR", ""),
			DedupStore:   getEnv("INVOICE_DEDUP_STORE", "processed_invoices.json"),
			RegistryFile: getEnv("INVOICE_REGISTRY_FILE", ""),
			Workers:      getEnvAsInt("INVOICE_WORKERS", 1),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateServer checks the configuration needed by the gRPC daemon.
func (c *Config) ValidateServer() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}

// ValidateMail checks the configuration needed to reach the mailbox.
func (c *Config) ValidateMail() error {
	if c.Mail.Username == "" || c.Mail.Password == "" {
		return NewAppError("CONFIG_ERROR", "IMAP_USERNAME and IMAP_PASSWORD are required", ErrInvalidInput)
	}
	return nil
}
