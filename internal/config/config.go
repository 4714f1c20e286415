package config

import "time"

// Config is the root application configuration.
type Config struct {
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Providers ProvidersConfig `yaml:"providers"`
	Cache     CacheConfig     `yaml:"cache"`
	History   HistoryConfig   `yaml:"history"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
}

// PipelineConfig holds parsing, routing, and throttling settings.
type PipelineConfig struct {
	// MaxTermTokens rejects highlights longer than this many words.
	MaxTermTokens int `yaml:"max_term_tokens" env:"PIPELINE_MAX_TERM_TOKENS" env-default:"6"`
	// PhraseTokenThreshold routes terms of this many tokens or more to
	// the plain translation chain instead of the rich one.
	PhraseTokenThreshold int           `yaml:"phrase_token_threshold" env:"PIPELINE_PHRASE_TOKEN_THRESHOLD" env-default:"3"`
	SourceLang           string        `yaml:"source_lang"            env:"PIPELINE_SOURCE_LANG"            env-default:"en"`
	TargetLang           string        `yaml:"target_lang"            env:"PIPELINE_TARGET_LANG"            env-default:"ru"`
	ThrottleMin          time.Duration `yaml:"throttle_min"           env:"PIPELINE_THROTTLE_MIN"           env-default:"1s"`
	ThrottleMax          time.Duration `yaml:"throttle_max"           env:"PIPELINE_THROTTLE_MAX"           env-default:"2s"`
}

// ProvidersConfig holds per-adapter settings.
type ProvidersConfig struct {
	// RetryMaxAttempts bounds transient-failure retries inside each
	// adapter, first attempt included.
	RetryMaxAttempts uint64 `yaml:"retry_max_attempts" env:"PROVIDERS_RETRY_MAX_ATTEMPTS" env-default:"3"`
	// RetryMaxInterval caps the exponential backoff between attempts.
	RetryMaxInterval time.Duration `yaml:"retry_max_interval" env:"PROVIDERS_RETRY_MAX_INTERVAL" env-default:"5s"`

	// YandexDictKey enables the Yandex Dictionary adapter in the rich
	// fallback chain; empty disables it.
	YandexDictKey string `yaml:"yandex_dict_key" env:"PROVIDERS_YANDEX_DICT_KEY"`
}

// CacheConfig locates the translation cache file.
type CacheConfig struct {
	Path string `yaml:"path" env:"CACHE_PATH" env-default:"./data/translation_cache.json"`
}

// HistoryConfig locates the processed-terms database.
type HistoryConfig struct {
	Path string `yaml:"path" env:"HISTORY_PATH" env-default:"./data/history.db"`
}

// OutputConfig locates the per-book CSV artifacts.
type OutputConfig struct {
	Dir string `yaml:"dir" env:"OUTPUT_DIR" env-default:"./output"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
