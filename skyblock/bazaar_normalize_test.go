package skyblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeProductID(t *testing.T) {
	assert.Equal(t, "INK_SACK_3", sanitizeProductID("ink sack 3"))
	assert.Equal(t, "INK_SACK_3", sanitizeProductID("INK_SACK:3"))
	assert.Equal(t, "DIAMOND", sanitizeProductID("diamond"))
}

func TestNormalizeProductID(t *testing.T) {
	cases := map[string]string{
		"DIAMOND":                       "DIAMOND",
		"INK_SACK:3":                    "INK_SACK",
		"ENCHANTMENT_ULTIMATE_WISDOM_5": "WISDOM",
		"ENCHANTMENT_CRITICAL_6":        "CRITICAL",
		"ESSENCE_WITHER":                "WITHER",
		"MITHRIL_ORE":                   "MITHRIL",
		"PET_ITEM_TIER_BOOST":           "TIER_BOOST",
		"WITHER_CATALYST_10":            "WITHER_CATALYST",
	}
	for id, expected := range cases {
		assert.Equal(t, expected, normalizeProductID(id))
	}
}

func TestNormalizeProductIDIdempotent(t *testing.T) {
	ids := []string{
		"DIAMOND",
		"INK_SACK:3",
		"ENCHANTMENT_ULTIMATE_WISDOM_5",
		"ESSENCE_WITHER",
		"MITHRIL_ORE",
	}
	for _, id := range ids {
		once := normalizeProductID(id)
		assert.Equal(t, once, normalizeProductID(once))
	}
}

func TestGenerateCandidatesBounded(t *testing.T) {
	bound := (len(productIDPrefixes) + 1) * (len(productIDSuffixes) + 1)

	out := generateCandidates("WISDOM_5")
	assert.True(t, len(out) <= bound)

	// the bare query is always the first candidate
	if !assert.True(t, len(out) > 0) {
		return
	}
	assert.Equal(t, "WISDOM_5", out[0])
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("DIAMOND", "DIAMOND"))
	assert.Equal(t, 1.0, similarity("", ""))
	assert.True(t, similarity("DIAMND", "DIAMOND") > fuzzyMinSimilarity)
	assert.True(t, similarity("XYZZY", "DIAMOND") < fuzzyMinSimilarity)
}
