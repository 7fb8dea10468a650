package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// ParseBool reads boolean-ish CSV text, falling back to def when the value is
// empty or unrecognised.
func ParseBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	case "false", "0", "no", "n":
		return false
	default:
		return def
	}
}

// ParseDecimal parses s, returning def when it is empty or malformed.
func ParseDecimal(s string, def decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return d
}

// ParseInt parses s, returning def when it is empty or malformed.
func ParseInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// Slugify derives a URL slug from name with a time based suffix so two rows
// with the same name do not collide.
func Slugify(name string, now time.Time, salt string) string {
	base := strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if base == "" {
		base = "item"
	}
	if len(base) > 80 {
		base = strings.TrimRight(base[:80], "-")
	}
	suffix := strconv.FormatInt(now.UnixMilli(), 36)
	if len(salt) > 6 {
		salt = salt[:6]
	}
	if salt != "" {
		suffix += salt
	}
	return base + "-" + suffix
}
