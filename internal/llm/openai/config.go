package openai

import "time"

// Config for the completion client. Defaults target OpenRouter with the
// low-temperature analyst model; any OpenAI-compatible endpoint works.
type Config struct {
	APIKey      string
	BaseURL     string        // default https://openrouter.ai/api/v1
	Model       string        // default mistralai/mistral-7b-instruct
	Temperature float32       // default 0.2
	Timeout     time.Duration // http client timeout, default 60s
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = "https://openrouter.ai/api/v1"
	}
	if c.Model == "" {
		c.Model = "mistralai/mistral-7b-instruct"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.2
	}
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	return c
}
