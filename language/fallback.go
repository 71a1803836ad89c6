// Package language picks a usable transcript language when the requested one
// is not offered by the source.
package language

import "strings"

// DefaultPreferred is the preference order used when a deployment does not
// configure its own.
var DefaultPreferred = []string{"en", "zh-HK", "zh-TW"}

// SelectFallback returns the first preferred code present in available, then
// the first available code with the "zh" prefix so Chinese variants can stand
// in for each other, then the first available code, and finally "en" when
// nothing is available at all. It never fails.
func SelectFallback(available, preferred []string) string {
	for _, want := range preferred {
		for _, have := range available {
			if have == want {
				return have
			}
		}
	}
	for _, have := range available {
		if strings.HasPrefix(have, "zh") {
			return have
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return "en"
}
