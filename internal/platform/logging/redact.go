package logging

import (
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, lowercased, the request headers whose values never
// reach the log. The HTTP middleware redacts them at the call site and the
// handler masks attributes with these names again.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"x-auth-token":        true,
	"cookie":              true,
	"set-cookie":          true,
}

var (
	// "Bearer <token>" in any string value.
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Three dot-joined segments of ten or more characters. Shorter segments
	// would catch version strings.
	jwtValue = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// "api_key=..." or "apikey: ..." pairs embedded in a value.
	inlineAPIKey = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

	// A raw participant address that was logged without Email. Addresses
	// already masked by MaskEmail have "*" before the "@" and do not match.
	rawEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
)

var (
	redactedFields   = []string{"password", "secret", "token"}
	redactedPrefixes = []string{"secret_", "api_key"}
)

// newRedactAttr builds the masq ReplaceAttr hook installed by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, name := range slices.Sorted(maps.Keys(SensitiveHeaders)) {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range []*regexp.Regexp{bearerValue, jwtValue, inlineAPIKey, rawEmail} {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}

// MaskEmail keeps the first character of the local part and the domain of a
// participant email: "michael@mergington.edu" becomes "m***@mergington.edu".
// Values without an "@" are masked entirely.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return "***"
	}
	return string([]rune(local)[:1]) + "***@" + domain
}

// Email is the "email" attribute for a participant, masked by MaskEmail.
func Email(email string) slog.Attr {
	return slog.String("email", MaskEmail(email))
}
