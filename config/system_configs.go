package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"twscreener/model"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultModel          = "gemini-3-pro-preview"
	defaultBaseURL        = "https://generativelanguage.googleapis.com/v1beta"
	defaultTransport      = "sdk"
	defaultTimeoutSeconds = 180
	defaultRatePerSecond  = 5
	defaultRateBurst      = 15
)

var validate = validator.New()

type SystemConfigs struct {
	Config *model.EnvConfig
}

func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	rawJson := os.Getenv("config")
	if rawJson == "" {
		return nil, fmt.Errorf("environment variable 'config' is empty or not set")
	}

	envCfg, err := ParseConfig(rawJson)
	if err != nil {
		return nil, err
	}

	return &SystemConfigs{
		Config: envCfg,
	}, nil
}

// ParseConfig decodes the JSON config blob, fills defaults and validates it.
func ParseConfig(rawJson string) (*model.EnvConfig, error) {
	var envCfg model.EnvConfig
	if err := json.Unmarshal([]byte(rawJson), &envCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	applyDefaults(&envCfg)

	if err := validate.Struct(&envCfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &envCfg, nil
}

func applyDefaults(c *model.EnvConfig) {
	if c.Port == "" {
		c.Port = defaultPort
	}
	if c.GeminiModel == "" {
		c.GeminiModel = defaultModel
	}
	if c.GeminiBaseUrl == "" {
		c.GeminiBaseUrl = defaultBaseURL
	}
	if c.Transport == "" {
		c.Transport = defaultTransport
	}
	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = defaultTimeoutSeconds
	}
	if c.RatePerSecond == 0 {
		c.RatePerSecond = defaultRatePerSecond
	}
	if c.RateBurst == 0 {
		c.RateBurst = defaultRateBurst
	}
	if len(c.FrontendUrls) == 0 {
		c.FrontendUrls = []string{"http://localhost:3000"}
	}
}

// Runtime extracts the flags that may be changed while serving.
func (s *SystemConfigs) Runtime() *model.RuntimeConfig {
	return &model.RuntimeConfig{
		FrontendUrls:  s.Config.FrontendUrls,
		RateLimiter:   s.Config.RateLimiter,
		RatePerSecond: s.Config.RatePerSecond,
		RateBurst:     s.Config.RateBurst,
		DebugMode:     s.Config.Debug,
	}
}

type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.RuntimeConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.RuntimeConfig {
	return cm.value.Load().(*model.RuntimeConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.RuntimeConfig) {
	cm.value.Store(newCfg)
}

// Apply stores a copy of the current config with the patch applied.
func (cm *ConfigManager) Apply(patch model.RuntimeConfigPatch) *model.RuntimeConfig {
	next := *cm.GetConfig()
	if patch.RateLimiter != nil {
		next.RateLimiter = *patch.RateLimiter
	}
	if patch.RatePerSecond != nil {
		next.RatePerSecond = *patch.RatePerSecond
	}
	if patch.RateBurst != nil {
		next.RateBurst = *patch.RateBurst
	}
	if patch.DebugMode != nil {
		next.DebugMode = *patch.DebugMode
	}
	cm.UpdateConfig(&next)
	return &next
}
