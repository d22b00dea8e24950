package limitdoc

import (
	"regexp"
	"strings"
)

// Predicate reports whether a transcript line matches.
type Predicate func(line string) bool

// Contains matches lines containing substr.
func Contains(substr string) Predicate {
	return func(line string) bool { return strings.Contains(line, substr) }
}

// HasPrefix matches lines starting with prefix.
func HasPrefix(prefix string) Predicate {
	return func(line string) bool { return strings.HasPrefix(line, prefix) }
}

// HasSuffix matches lines ending with suffix, ignoring surrounding whitespace.
func HasSuffix(suffix string) Predicate {
	return func(line string) bool { return strings.HasSuffix(strings.TrimSpace(line), suffix) }
}

// MatchRegexp matches lines re matches.
func MatchRegexp(re *regexp.Regexp) Predicate {
	return re.MatchString
}

// AnyOf matches lines any of preds match. With no predicates it matches
// nothing.
func AnyOf(preds ...Predicate) Predicate {
	return func(line string) bool {
		for _, p := range preds {
			if p(line) {
				return true
			}
		}
		return false
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(line string) bool { return !p(line) }
}

// Anchors for limit listings.
var (
	// APIValue matches a limit whose value came from the service API.
	APIValue = Contains("(API)")
	// UnlimitedValue matches a limit with no maximum.
	UnlimitedValue = HasSuffix(Unlimited)
)

// ListingAnchors returns the anchors used when summarizing limit listings:
// the first API-sourced value, then the first unlimited value.
func ListingAnchors() []Predicate {
	return []Predicate{APIValue, UnlimitedValue}
}
