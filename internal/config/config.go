package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/x-maues/rag-flarista/internal/chunker"
)

// Defaults mirror the models and chunking policy the assistant was tuned with.
const (
	defaultAddr           = ":8000"
	defaultDocsDir        = "docs"
	defaultChunkSize      = 1000
	defaultChunkOverlap   = 100
	defaultTopK           = 5
	defaultChatModel      = "gemini-2.0-flash"
	defaultGeneralModel   = "gemini-2.0-pro-exp-02-05"
	defaultEmbeddingModel = "embedding-001"
	defaultChatTemp       = 0.4
	defaultGeneralTemp    = 0.7
	defaultTimeoutSecs    = 60
)

// APIKeyEnv is the environment variable holding the Gemini credential.
const APIKeyEnv = "GOOGLE_API_KEY"

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type DocsConfig struct {
	Dir string `yaml:"dir"`
}

type RAGConfig struct {
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
	TopK         int `yaml:"top_k"`
}

type LLMConfig struct {
	ChatModel          string  `yaml:"chat_model"`
	GeneralModel       string  `yaml:"general_model"`
	EmbeddingModel     string  `yaml:"embedding_model"`
	ChatTemperature    float64 `yaml:"chat_temperature"`
	GeneralTemperature float64 `yaml:"general_temperature"`
	TimeoutSecs        int     `yaml:"timeout_secs"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Docs   DocsConfig   `yaml:"docs"`
	RAG    RAGConfig    `yaml:"rag"`
	LLM    LLMConfig    `yaml:"llm"`

	// APIKey is read from the environment, never from the config file.
	APIKey string `yaml:"-"`
}

// Load reads the yaml config at path, falling back to defaults when the file
// does not exist, and pulls the provider credential from the environment.
// The returned config is validated; an error here is a startup-fatal
// configuration error.
func Load(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	applyDefaults(&cfg)
	cfg.APIKey = os.Getenv(APIKeyEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultAddr
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"http://localhost:3000"}
	}
	if cfg.Docs.Dir == "" {
		cfg.Docs.Dir = defaultDocsDir
	}
	if cfg.RAG.ChunkSize == 0 {
		cfg.RAG.ChunkSize = defaultChunkSize
		if cfg.RAG.ChunkOverlap == 0 {
			cfg.RAG.ChunkOverlap = defaultChunkOverlap
		}
	}
	if cfg.RAG.TopK == 0 {
		cfg.RAG.TopK = defaultTopK
	}
	if cfg.LLM.ChatModel == "" {
		cfg.LLM.ChatModel = defaultChatModel
	}
	if cfg.LLM.GeneralModel == "" {
		cfg.LLM.GeneralModel = defaultGeneralModel
	}
	if cfg.LLM.EmbeddingModel == "" {
		cfg.LLM.EmbeddingModel = defaultEmbeddingModel
	}
	if cfg.LLM.ChatTemperature == 0 {
		cfg.LLM.ChatTemperature = defaultChatTemp
	}
	if cfg.LLM.GeneralTemperature == 0 {
		cfg.LLM.GeneralTemperature = defaultGeneralTemp
	}
	if cfg.LLM.TimeoutSecs == 0 {
		cfg.LLM.TimeoutSecs = defaultTimeoutSecs
	}
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s not set in environment", APIKeyEnv)
	}
	if err := chunker.Validate(c.RAG.ChunkSize, c.RAG.ChunkOverlap); err != nil {
		return err
	}
	if c.RAG.TopK < 1 {
		return fmt.Errorf("rag.top_k must be positive, got %d", c.RAG.TopK)
	}
	if c.LLM.TimeoutSecs < 1 {
		return fmt.Errorf("llm.timeout_secs must be positive, got %d", c.LLM.TimeoutSecs)
	}
	return nil
}

// Timeout is the bound applied to every provider call.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.LLM.TimeoutSecs) * time.Second
}
