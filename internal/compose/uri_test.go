package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURI(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		body     string
		platform Platform
		want     string
	}{
		{"Apple joins with ampersand", "+15551234567", "Hi Ann", PlatformApple, "sms:%2B15551234567&body=Hi%20Ann"},
		{"Other joins with question mark", "+15551234567", "Hi Ann", PlatformOther, "sms:%2B15551234567?body=Hi%20Ann"},
		{"Reserved characters escaped", "5550101", "A&B=C?D/E", PlatformOther, "sms:5550101?body=A%26B%3DC%3FD%2FE"},
		{"Newlines escaped", "1", "line1\nline2", PlatformOther, "sms:1?body=line1%0Aline2"},
		{"Unicode escaped as UTF-8", "1", "café", PlatformApple, "sms:1&body=caf%C3%A9"},
		{"Empty body", "1", "", PlatformOther, "sms:1?body="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URI(tt.phone, tt.body, tt.platform))
		})
	}
}

func TestEncodeComponentPlusSign(t *testing.T) {
	assert.Equal(t, "1%2B1%3D2", EncodeComponent("1+1=2"))
	assert.Equal(t, "a%20b", EncodeComponent("a b"))
}

func TestEncodeComponentUnreservedMarks(t *testing.T) {
	assert.Equal(t, "Hi!%20(it's)%20*you*%20~_.-", EncodeComponent("Hi! (it's) *you* ~_.-"))
	assert.Equal(t, "100%25", EncodeComponent("100%"))
}

func TestParsePlatform(t *testing.T) {
	for in, want := range map[string]Platform{
		"":        PlatformAuto,
		"auto":    PlatformAuto,
		" Apple ": PlatformApple,
		"other":   PlatformOther,
	} {
		got, err := ParsePlatform(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePlatform("android")
	assert.Error(t, err)
}

func TestResolvePlatform(t *testing.T) {
	assert.Equal(t, PlatformApple, ResolvePlatform(PlatformAuto, "darwin"))
	assert.Equal(t, PlatformApple, ResolvePlatform(PlatformAuto, "ios"))
	assert.Equal(t, PlatformOther, ResolvePlatform(PlatformAuto, "linux"))
	assert.Equal(t, PlatformOther, ResolvePlatform("", "windows"))
	assert.Equal(t, PlatformApple, ResolvePlatform(PlatformApple, "linux"), "explicit platform wins")
	assert.Equal(t, PlatformOther, ResolvePlatform(PlatformOther, "darwin"), "explicit platform wins")
}
