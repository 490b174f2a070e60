package config

import (
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool

	// Catalog
	CatalogPath       string
	InventoryTrackers []string

	// Remote cart service
	CartBaseURL    string
	CartTimeout    time.Duration // 0 leaves the transport default
	CartPathCart   string
	CartPathAdd    string
	CartPathChange string

	// Presentation
	MoneyFormat   string
	AddedFeedback time.Duration
	ErrorFeedback time.Duration

	// Sessions
	SessionCookie string
	SessionTTL    time.Duration
	SessionSweep  string

	// Sandbox cart service
	SandboxPort  string
	SandboxStock int
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = NewConfig()
	})
}

// NewConfig reads the environment.
func NewConfig() *Config {
	return &Config{
		AppName: GetEnv("APP_NAME", "storefront"),
		Port:    GetEnv("PORT", "8080"),
		Env:     GetEnv("APP_ENV", "dev"),
		Debug:   GetEnv("DEBUG", "") == "true",

		CatalogPath:       GetEnv("CATALOG_PATH", "catalog.json"),
		InventoryTrackers: GetEnvList("INVENTORY_TRACKERS", []string{"shopify"}),

		CartBaseURL:    GetEnv("CART_BASE_URL", "http://localhost:8081"),
		CartTimeout:    GetEnvDuration("CART_TIMEOUT", 0),
		CartPathCart:   GetEnv("CART_PATH_CART", ""),
		CartPathAdd:    GetEnv("CART_PATH_ADD", ""),
		CartPathChange: GetEnv("CART_PATH_CHANGE", ""),

		MoneyFormat:   GetEnv("MONEY_FORMAT", ""),
		AddedFeedback: GetEnvDuration("FEEDBACK_ADDED", 800*time.Millisecond),
		ErrorFeedback: GetEnvDuration("FEEDBACK_ERROR", 900*time.Millisecond),

		SessionCookie: GetEnv("SESSION_COOKIE", "sf_session"),
		SessionTTL:    GetEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionSweep:  GetEnv("SESSION_SWEEP", "@every 5m"),

		SandboxPort:  GetEnv("SANDBOX_PORT", "8081"),
		SandboxStock: GetEnvInt("SANDBOX_STOCK", 5),
	}
}
