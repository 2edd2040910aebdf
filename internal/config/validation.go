package config

import (
	"fmt"
	"strings"

	urlutil "github.com/law-makers/pricealert/internal/utils/url"
)

func validate(c *Config) error {
	if err := urlutil.ValidateURL(c.URL); err != nil {
		return err
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		return fmt.Errorf("user agent must not be empty")
	}
	if c.Tag == "" {
		return fmt.Errorf("tag must not be empty")
	}
	if c.Class == "" {
		return fmt.Errorf("class must not be empty")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must be >= 0")
	}
	for _, p := range c.Proxies {
		if err := urlutil.ValidateProxyURL(p); err != nil {
			return err
		}
	}
	return nil
}
