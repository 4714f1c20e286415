package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Pipeline.MaxTermTokens <= 0 {
		return fmt.Errorf("pipeline.max_term_tokens must be > 0 (got %d)", c.Pipeline.MaxTermTokens)
	}
	if c.Pipeline.PhraseTokenThreshold <= 0 {
		return fmt.Errorf("pipeline.phrase_token_threshold must be > 0 (got %d)", c.Pipeline.PhraseTokenThreshold)
	}
	if c.Pipeline.SourceLang == "" || c.Pipeline.TargetLang == "" {
		return fmt.Errorf("pipeline.source_lang and pipeline.target_lang must be set")
	}
	if c.Pipeline.ThrottleMin <= 0 || c.Pipeline.ThrottleMax < c.Pipeline.ThrottleMin {
		return fmt.Errorf("pipeline throttle bounds invalid: min=%v max=%v", c.Pipeline.ThrottleMin, c.Pipeline.ThrottleMax)
	}
	if c.Providers.RetryMaxAttempts == 0 {
		return fmt.Errorf("providers.retry_max_attempts must be > 0")
	}
	if c.Cache.Path == "" {
		return fmt.Errorf("cache.path must be set")
	}
	if c.History.Path == "" {
		return fmt.Errorf("history.path must be set")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must be set")
	}
	return nil
}
