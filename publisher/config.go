package publisher

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"linkedin_post_bot/generator"
)

// DefaultConfigPath is read when --config is not given; its absence is not an error.
const DefaultConfigPath = "linkedin_bot.yaml"

// Config holds output locations and the model settings.
type Config struct {
	OutputDir  string     `yaml:"output_dir"`
	LatestFile string     `yaml:"latest_file"`
	HTMLFile   string     `yaml:"html_file,omitempty"`
	Strict     bool       `yaml:"strict,omitempty"`
	LLM        *LLMConfig `yaml:"llm,omitempty"`
}

// LLMConfig configures the generation endpoint. The key itself never lives in the file.
type LLMConfig struct {
	Provider    string  `yaml:"provider,omitempty"`
	Model       string  `yaml:"model,omitempty"`
	APIKeyEnv   string  `yaml:"api_key_env,omitempty"`
	BaseURL     string  `yaml:"base_url,omitempty"`
	MaxTokens   int     `yaml:"max_tokens,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		OutputDir:  "linkedin_posts",
		LatestFile: "latest_post.txt",
		LLM: &LLMConfig{
			Provider:    "openai",
			Model:       generator.DefaultModel,
			APIKeyEnv:   "OPENAI_API_KEY",
			MaxTokens:   generator.DefaultMaxTokens,
			Temperature: generator.DefaultTemperature,
		},
	}
}

// LoadConfig reads YAML config from disk and fills unset fields from Defaults.
// A missing file is only tolerated when optional is true.
func LoadConfig(path string, optional bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Defaults()
	if c.OutputDir == "" {
		c.OutputDir = d.OutputDir
	}
	if c.LatestFile == "" {
		c.LatestFile = d.LatestFile
	}
	if c.LLM == nil {
		c.LLM = d.LLM
		return
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = d.LLM.Provider
	}
	if c.LLM.Model == "" {
		c.LLM.Model = d.LLM.Model
	}
	if c.LLM.APIKeyEnv == "" {
		c.LLM.APIKeyEnv = d.LLM.APIKeyEnv
	}
	if c.LLM.MaxTokens <= 0 {
		c.LLM.MaxTokens = d.LLM.MaxTokens
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = d.LLM.Temperature
	}
}

// Validate rejects settings the generator cannot honour.
func (c Config) Validate() error {
	if c.LLM != nil && c.LLM.Provider != "openai" {
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	if c.LLM != nil && (c.LLM.Temperature < 0 || c.LLM.Temperature > 2) {
		return fmt.Errorf("llm temperature %.2f out of range [0, 2]", c.LLM.Temperature)
	}
	return nil
}

// APIKey looks up the credential in the configured environment variable.
func (c Config) APIKey() string {
	env := "OPENAI_API_KEY"
	if c.LLM != nil && c.LLM.APIKeyEnv != "" {
		env = c.LLM.APIKeyEnv
	}
	return os.Getenv(env)
}
