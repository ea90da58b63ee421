package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateMediaURL checks that a journal attachment URL is well-formed.
func ValidateMediaURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("media URL cannot be empty")
	}
	if len(raw) > 2048 {
		return fmt.Errorf("media URL must not exceed 2048 characters")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid media URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("media URL must use http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("media URL must include a host")
	}
	return nil
}

// ValidateJournalTitle checks journal title constraints.
func ValidateJournalTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if len(trimmed) > 255 {
		return fmt.Errorf("title must not exceed 255 characters")
	}
	return nil
}
