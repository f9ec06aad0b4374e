package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/osse101/mudcraft/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"oneof=dev staging prod test"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`
	// LogDir, when set, adds a rotating session log file next to stdout
	LogDir string

	// HTTPPort 0 disables the catalogue server
	HTTPPort        int           `validate:"min=0,max=65535"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	// RateLimit caps requests per client IP within RateWindow
	RateLimit      int           `validate:"min=1"`
	RateWindow     time.Duration `validate:"gt=0"`
	TrustedProxies []string      `validate:"dive,ip"`

	ReceditMinTrust   int `validate:"min=1,max=60"`
	RecipeCacheSize   int `validate:"min=1"`
	MaterialListLimit int `validate:"min=1"`

	MaterialsFile string
	Materials     MaterialVNUMs
	RecipesFile   string
}

// MaterialVNUMs maps the material roles the engine produces on its own
// (corpse defaults, salvage derivation) to object prototypes.
type MaterialVNUMs struct {
	Hide          domain.VNUM `yaml:"hide" validate:"gt=0"`
	Meat          domain.VNUM `yaml:"meat" validate:"gt=0"`
	TannedLeather domain.VNUM `yaml:"tanned_leather" validate:"gt=0"`
	IronIngot     domain.VNUM `yaml:"iron_ingot" validate:"gt=0"`
	BronzeIngot   domain.VNUM `yaml:"bronze_ingot" validate:"gt=0"`
	LinenScraps   domain.VNUM `yaml:"linen_scraps" validate:"gt=0"`
}

// DefaultMaterialVNUMs returns the stock material prototype vnums
func DefaultMaterialVNUMs() MaterialVNUMs {
	return MaterialVNUMs{
		Hide:          domain.DefaultVNUMHide,
		Meat:          domain.DefaultVNUMMeat,
		TannedLeather: domain.DefaultVNUMTannedLeather,
		IronIngot:     domain.DefaultVNUMIronIngot,
		BronzeIngot:   domain.DefaultVNUMBronzeIngot,
		LinenScraps:   domain.DefaultVNUMLinenScraps,
	}
}

// Load loads the configuration from environment variables and the optional
// materials file, then validates it.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		LogLevel:          getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:         getEnv(EnvLogFormat, DefaultLogFormat),
		ServiceName:       getEnv(EnvServiceName, DefaultServiceName),
		Version:           getEnv(EnvVersion, DefaultVersion),
		ShutdownTimeout:   getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
		RateLimit:         getEnvAsInt(EnvRateLimit, DefaultRateLimit),
		RateWindow:        getEnvAsDuration(EnvRateWindow, DefaultRateWindow),
		TrustedProxies:    getEnvAsList(EnvTrustedProxies),
		ReceditMinTrust:   getEnvAsInt(EnvReceditMinTrust, domain.LevelBuilder),
		RecipeCacheSize:   getEnvAsInt(EnvRecipeCacheSize, DefaultRecipeCacheSize),
		MaterialListLimit: getEnvAsInt(EnvMaterialListLimit, DefaultMaterialListLimit),
		MaterialsFile:     getEnv(EnvMaterialsFile, DefaultMaterialsFile),
		RecipesFile:       getEnv(EnvRecipesFile, DefaultRecipesFile),
		LogDir:            getEnv(EnvLogDir, ""),
	}

	portStr := getEnv(EnvHTTPPort, DefaultHTTPPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvHTTPPort, err)
	}
	cfg.HTTPPort = port

	materials, err := LoadMaterials(cfg.MaterialsFile)
	if err != nil {
		return nil, err
	}
	cfg.Materials = materials

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadMaterials reads the material vnum map from a YAML file. Roles the file
// omits keep their defaults; a missing file yields the defaults.
func LoadMaterials(path string) (MaterialVNUMs, error) {
	m := DefaultMaterialVNUMs()
	if path == "" {
		return m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, fmt.Errorf("reading materials %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parsing materials %s: %w", path, err)
	}
	return m, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when
// unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
