// Package config defines deployment configuration for the orchestration
// engine. Values are plain struct fields passed explicitly into constructors;
// nothing in the engine reads the process environment directly. FromEnv is
// the one place environment variables are consulted, intended for use from
// cmd after godotenv loading.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Provider selects the completion backend.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config carries every per-deployment knob of the engine: the target model of
// each agent, the completion endpoint, embedding settings for archival
// memory, memory file locations and turn defaults.
type Config struct {
	// ReferenceModels are the model identifiers of the reference agents, in
	// agent order (analytical, historical context, science truth).
	ReferenceModels [3]string
	// SynthesisModel is the model identifier of the synthesis agent; it also
	// serves the transient query-expansion agent.
	SynthesisModel string

	// Provider selects the completion backend: "openai" (any
	// OpenAI-compatible endpoint, including Ollama) or "anthropic".
	Provider string
	// BaseURL is the completion endpoint for the openai provider.
	BaseURL string
	// APIKey authenticates completion and embedding calls.
	APIKey string

	// EmbeddingProvider selects the embedding backend for archival memory:
	// "ollama" (default) or "openai".
	EmbeddingProvider string
	EmbeddingModel    string
	// EmbeddingBaseURL is the Ollama API endpoint for the ollama embedding
	// provider.
	EmbeddingBaseURL string

	// CoreMemoryPath is the JSON file backing structured core memory.
	CoreMemoryPath string

	Temperature      float64
	MaxTokens        int64
	WebSearchEnabled bool
}

// Default returns the local-Ollama development configuration.
func Default() Config {
	return Config{
		ReferenceModels:   [3]string{"llama3.1", "llama3.1", "llama3.1"},
		SynthesisModel:    "llama3.1",
		Provider:          ProviderOpenAI,
		BaseURL:           "http://localhost:11434/v1",
		APIKey:            "ollama",
		EmbeddingProvider: "ollama",
		EmbeddingModel:    "nomic-embed-text",
		EmbeddingBaseURL:  "http://localhost:11434/api",
		CoreMemoryPath:    filepath.Join(".moa", "core_memory.json"),
		Temperature:       0.7,
		MaxTokens:         1000,
		WebSearchEnabled:  true,
	}
}

// FromEnv builds a Config from MOA_* environment variables, falling back to
// Default for anything unset.
func FromEnv() Config {
	cfg := Default()

	setString(&cfg.ReferenceModels[0], "MOA_MODEL_REFERENCE_1")
	setString(&cfg.ReferenceModels[1], "MOA_MODEL_REFERENCE_2")
	setString(&cfg.ReferenceModels[2], "MOA_MODEL_REFERENCE_3")
	setString(&cfg.SynthesisModel, "MOA_MODEL_SYNTHESIS")
	setString(&cfg.Provider, "MOA_PROVIDER")
	setString(&cfg.BaseURL, "MOA_BASE_URL")
	setString(&cfg.APIKey, "MOA_API_KEY")
	setString(&cfg.EmbeddingProvider, "MOA_EMBEDDING_PROVIDER")
	setString(&cfg.EmbeddingModel, "MOA_EMBEDDING_MODEL")
	setString(&cfg.EmbeddingBaseURL, "MOA_EMBEDDING_BASE_URL")
	setString(&cfg.CoreMemoryPath, "MOA_CORE_MEMORY_PATH")

	if v := os.Getenv("MOA_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("MOA_MAX_TOKENS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("MOA_WEB_SEARCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WebSearchEnabled = b
		}
	}

	return cfg
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
