package config

import (
	"fmt"
	"strings"

	"catalogserver/consolidation"
)

// validLogLevels допустимые уровни логирования
var validLogLevels = map[string]struct{}{
	"DEBUG": {}, "INFO": {}, "WARN": {}, "ERROR": {},
}

// Validate проверяет согласованность конфигурации. Вызывается при
// загрузке: сервис с кривой конфигурацией не должен стартовать.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port must not be empty")
	}
	if strings.TrimSpace(c.ServiceDatabasePath) == "" {
		return fmt.Errorf("service database path must not be empty")
	}

	if c.LogLevel != "" {
		if _, ok := validLogLevels[strings.ToUpper(c.LogLevel)]; !ok {
			return fmt.Errorf("unknown log level %q", c.LogLevel)
		}
	}

	if len(c.SizeTokens) == 0 {
		return fmt.Errorf("size token vocabulary must not be empty")
	}

	mode := consolidation.IdentityMode(c.IdentityMode)
	if !mode.Valid() {
		return fmt.Errorf("identity mode must be %q or %q, got %q",
			consolidation.IdentityByName, consolidation.IdentityBySKU, c.IdentityMode)
	}

	switch c.DisplayCasing {
	case consolidation.CasingUpper, consolidation.CasingTitle, consolidation.CasingLower:
	default:
		return fmt.Errorf("unknown display casing %q", c.DisplayCasing)
	}

	if strings.TrimSpace(c.ParentPrefix) == "" {
		return fmt.Errorf("parent prefix must not be empty")
	}

	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold must be in (0, 1], got %v", c.SimilarityThreshold)
	}

	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive")
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit burst must be positive")
	}

	return nil
}
