package config

import "time"

// Environment variable names
const (
	EnvEnvironment       = "ENVIRONMENT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvHTTPPort          = "HTTP_PORT"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	EnvRateLimit         = "RATE_LIMIT"
	EnvRateWindow        = "RATE_WINDOW"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvReceditMinTrust   = "RECEDIT_MIN_TRUST"
	EnvRecipeCacheSize   = "RECIPE_CACHE_SIZE"
	EnvMaterialListLimit = "MATERIAL_LIST_LIMIT"
	EnvMaterialsFile     = "MATERIALS_FILE"
	EnvRecipesFile       = "RECIPES_FILE"
	EnvLogDir            = "LOG_DIR"
)

// Defaults
const (
	DefaultEnvironment       = "dev"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultServiceName       = "mudcraft"
	DefaultVersion           = "dev"
	DefaultHTTPPort          = "8080"
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultRateLimit         = 1000
	DefaultRateWindow        = 5 * time.Minute
	DefaultRecipeCacheSize   = 256
	DefaultMaterialListLimit = 50
	DefaultMaterialsFile     = "configs/materials.yaml"
	DefaultRecipesFile       = "configs/recipes.yaml"
)
