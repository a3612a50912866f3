package skyblock

import (
	"regexp"
	"strings"
)

// ordered longest-first so ENCHANTMENT_ULTIMATE_ is stripped in preference to ENCHANTMENT_
var productIDPrefixes = []string{
	"ENCHANTMENT_ULTIMATE_",
	"ENCHANTMENT_",
	"ESSENCE_",
	"PET_ITEM_",
}

// _10 must precede _1
var productIDSuffixes = []string{
	"_ITEM",
	"_SCROLL",
	"_GEM",
	"_ORE",
	"_10",
	"_9",
	"_8",
	"_7",
	"_6",
	"_5",
	"_4",
	"_3",
	"_2",
	"_1",
}

var nonIDCharPattern = regexp.MustCompile("[^A-Z0-9]")

// sanitizeProductID uppercases and replaces every non-alphanumeric character with _
func sanitizeProductID(in string) string {
	return nonIDCharPattern.ReplaceAllString(strings.ToUpper(in), "_")
}

// normalizeProductID derives the lookup token for a canonical product id,
// stripping at most one prefix and one suffix (first match wins on each)
func normalizeProductID(id string) string {
	out := sanitizeProductID(id)

	for _, prefix := range productIDPrefixes {
		if strings.HasPrefix(out, prefix) {
			out = strings.TrimPrefix(out, prefix)

			break
		}
	}

	for _, suffix := range productIDSuffixes {
		if strings.HasSuffix(out, suffix) {
			out = strings.TrimSuffix(out, suffix)

			break
		}
	}

	return out
}
