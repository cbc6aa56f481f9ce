package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/sentiment-flow/internal/transcript"
)

// Supported sentiment providers
const (
	ProviderTextAnalytics = "textanalytics"
	ProviderGemini        = "gemini"
)

type Config struct {
	Sentiment   SentimentConfig   `yaml:"sentiment"`
	Transcripts TranscriptsConfig `yaml:"transcripts"`
	Output      OutputConfig      `yaml:"output"`
	Tweets      TweetsConfig      `yaml:"tweets"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type SentimentConfig struct {
	Provider string        `yaml:"provider"`
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"api_key"`
	APIKeys  []string      `yaml:"api_keys"`
	Model    string        `yaml:"model"`
	Language string        `yaml:"language"`
	Timeout  time.Duration `yaml:"timeout"`
}

type TranscriptsConfig struct {
	InputDir   string `yaml:"input_dir"`
	Extension  string `yaml:"extension"`
	Delimiter  string `yaml:"delimiter"`
	WindowSize int    `yaml:"window_size"`
}

type OutputConfig struct {
	DetailPath  string `yaml:"detail_path"`
	SummaryPath string `yaml:"summary_path"`
	ReportPath  string `yaml:"report_path"`
}

type TweetsConfig struct {
	FullOutput    string `yaml:"full_output"`
	SummaryOutput string `yaml:"summary_output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML file at path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv lets credentials live outside the config file
func (c *Config) applyEnv() {
	if v := os.Getenv("SENTIMENT_API_KEY"); v != "" {
		c.Sentiment.APIKey = v
	}
	if v := os.Getenv("SENTIMENT_ENDPOINT"); v != "" {
		c.Sentiment.Endpoint = v
	}
	if v := os.Getenv("GEMINI_API_KEYS"); v != "" {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		c.Sentiment.APIKeys = keys
	}
}

func (c *Config) Validate() error {
	if c.Sentiment.Provider == "" {
		c.Sentiment.Provider = ProviderTextAnalytics
	}

	switch c.Sentiment.Provider {
	case ProviderTextAnalytics:
		if c.Sentiment.Endpoint == "" {
			return fmt.Errorf("sentiment.endpoint is required")
		}
		if c.Sentiment.APIKey == "" {
			return fmt.Errorf("sentiment.api_key is required")
		}
	case ProviderGemini:
		if len(c.Sentiment.APIKeys) == 0 && c.Sentiment.APIKey != "" {
			c.Sentiment.APIKeys = []string{c.Sentiment.APIKey}
		}
		if len(c.Sentiment.APIKeys) == 0 {
			return fmt.Errorf("sentiment.api_keys is required")
		}
	default:
		return fmt.Errorf("sentiment.provider %q is not supported", c.Sentiment.Provider)
	}

	if c.Transcripts.WindowSize < 0 {
		return fmt.Errorf("transcripts.window_size must not be negative")
	}
	if c.Transcripts.WindowSize > transcript.MaxWindowSize {
		return fmt.Errorf("transcripts.window_size must not exceed %d", transcript.MaxWindowSize)
	}

	if c.Sentiment.Model == "" {
		c.Sentiment.Model = "gemini-2.5-flash"
	}
	if c.Sentiment.Language == "" {
		c.Sentiment.Language = "en"
	}
	if c.Sentiment.Timeout == 0 {
		c.Sentiment.Timeout = 60 * time.Second
	}
	if c.Transcripts.InputDir == "" {
		c.Transcripts.InputDir = "."
	}
	if c.Transcripts.Extension == "" {
		c.Transcripts.Extension = "txt"
	}
	c.Transcripts.Extension = strings.TrimPrefix(c.Transcripts.Extension, ".")
	if c.Transcripts.Delimiter == "" {
		c.Transcripts.Delimiter = "**"
	}
	if c.Transcripts.WindowSize == 0 {
		c.Transcripts.WindowSize = transcript.MaxWindowSize
	}
	if c.Output.DetailPath == "" {
		c.Output.DetailPath = "transcript_results.csv"
	}
	if c.Output.SummaryPath == "" {
		c.Output.SummaryPath = "transcript_summary.csv"
	}
	if c.Tweets.FullOutput == "" {
		c.Tweets.FullOutput = "tweetresult.csv"
	}
	if c.Tweets.SummaryOutput == "" {
		c.Tweets.SummaryOutput = "tweetsummary.csv"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
