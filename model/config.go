package model

// --- SYSTEM CONFIG ---
// EnvConfig is decoded from the `config` environment variable at startup.
type EnvConfig struct {
	Port                  string   `json:"port"`
	Environment           string   `json:"environment" validate:"omitempty,oneof=development production"`
	GeminiApiKey          string   `json:"geminiApiKey" validate:"required"`
	GeminiModel           string   `json:"geminiModel" validate:"required"`
	GeminiBaseUrl         string   `json:"geminiBaseUrl" validate:"required,url"`
	Transport             string   `json:"transport" validate:"oneof=sdk rest"`
	RequestTimeoutSeconds int      `json:"requestTimeoutSeconds" validate:"gt=0"`
	EnableSearch          *bool    `json:"enableSearch"`
	FrontendUrls          []string `json:"frontendUrls" validate:"dive,url"`
	RateLimiter           bool     `json:"rateLimiter"`
	RatePerSecond         float64  `json:"ratePerSecond" validate:"gte=0"`
	RateBurst             int      `json:"rateBurst" validate:"gte=0"`
	Debug                 bool     `json:"debug"`
	// AdminKey guards runtime config updates; empty disables them.
	AdminKey string `json:"adminKey"`
}

func (c *EnvConfig) SearchEnabled() bool {
	return c.EnableSearch == nil || *c.EnableSearch
}

// RuntimeConfig holds the flags that can change while the server runs.
type RuntimeConfig struct {
	FrontendUrls  []string `json:"frontendUrls"`
	RateLimiter   bool     `json:"rateLimiter"`
	RatePerSecond float64  `json:"ratePerSecond"`
	RateBurst     int      `json:"rateBurst"`
	DebugMode     bool     `json:"debug"`
}

type RuntimeConfigPatch struct {
	RateLimiter   *bool    `json:"rateLimiter,omitempty"`
	RatePerSecond *float64 `json:"ratePerSecond,omitempty" exclusiveMinimum:"0"`
	RateBurst     *int     `json:"rateBurst,omitempty" minimum:"1"`
	DebugMode     *bool    `json:"debug,omitempty"`
}

// --- Huma Structs ---

type ConfigPatchInput struct {
	Body RuntimeConfigPatch
}
