package compose

import (
	"fmt"
	"net/url"
	"runtime"
	"strings"
)

// Platform selects the sms: URI dialect.
type Platform string

const (
	PlatformAuto  Platform = "auto"  // Resolve from the running OS
	PlatformApple Platform = "apple" // iOS, iPadOS, macOS
	PlatformOther Platform = "other" // Android and everything else
)

// ParsePlatform validates a platform name from flags or config.
// Empty input means PlatformAuto.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PlatformAuto, nil
	case PlatformAuto, PlatformApple, PlatformOther:
		return p, nil
	default:
		return "", fmt.Errorf("unknown platform %q (want auto, apple or other)", s)
	}
}

// ResolvePlatform turns PlatformAuto into a concrete platform for goos.
func ResolvePlatform(p Platform, goos string) Platform {
	if p != PlatformAuto && p != "" {
		return p
	}
	switch goos {
	case "darwin", "ios":
		return PlatformApple
	default:
		return PlatformOther
	}
}

// HostPlatform resolves p against the OS this binary runs on.
func HostPlatform(p Platform) Platform {
	return ResolvePlatform(p, runtime.GOOS)
}

// Separator returns the character placed between number and body.
func (p Platform) Separator() string {
	if p == PlatformApple {
		return "&"
	}
	return "?"
}

// URI builds the sms: link for a pre-sanitized phone number and message
// body. The number is not sanitized again here.
func URI(phone, body string, platform Platform) string {
	return "sms:" + EncodeComponent(phone) + platform.Separator() + "body=" + EncodeComponent(body)
}

// componentUnescaper restores the marks encodeURIComponent leaves alone
// and turns QueryEscape's '+' back into %20.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s the way browsers' encodeURIComponent
// does. Spaces become %20, never '+'.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
