package utils

import (
	"fmt"

	ua "github.com/mileusna/useragent"
)

// DescribeUserAgent turns a raw User-Agent header into a short
// human-readable device description for session records.
func DescribeUserAgent(userAgent string) string {
	parsed := ua.Parse(userAgent)

	device := "Desktop"
	switch {
	case parsed.Mobile:
		device = "Mobile"
	case parsed.Tablet:
		device = "Tablet"
	case parsed.Bot:
		device = "Bot"
	}

	name := parsed.Name
	if name == "" {
		name = "Unknown browser"
	}
	os := parsed.OS
	if os == "" {
		os = "unknown OS"
	}

	return fmt.Sprintf("%s on %s (%s)", name, os, device)
}
