package skyblock

import (
	"fmt"

	"github.com/renstrom/fuzzysearch/fuzzy"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/hypixel/codes"
)

// minimum similarity for the fuzzy fallback, a tuning parameter of the index
const fuzzyMinSimilarity = 0.6

// Search resolves a free-form query to a product: first an exact hit on the
// normalized reverse map, then prefix/suffix candidates probed against the
// canonical ids, then the closest normalized id by string similarity.
func (bi BazaarIndex) Search(term string) (hypixel.Product, error) {
	query := sanitizeProductID(term)

	if id, ok := bi.normalized[query]; ok {
		return bi.products[id], nil
	}

	for _, candidate := range generateCandidates(query) {
		if p, ok := bi.products[candidate]; ok {
			return p, nil
		}
	}

	bestIndex := -1
	bestSimilarity := 0.0
	for i, normalizedID := range bi.normalizedIDs {
		s := similarity(query, normalizedID)
		if s > bestSimilarity {
			bestIndex = i
			bestSimilarity = s
		}
	}
	if bestIndex != -1 && bestSimilarity >= fuzzyMinSimilarity {
		return bi.products[bi.ids[bestIndex]], nil
	}

	return hypixel.Product{}, hypixel.Error{
		Code:  codes.NotFound,
		Cause: fmt.Sprintf("no product matches %s", term),
	}
}

// generateCandidates forms every prefix+query+suffix combination, deduplicated
// in generation order. The result is bounded by (prefixes+1)*(suffixes+1).
func generateCandidates(query string) []string {
	prefixes := append([]string{""}, productIDPrefixes...)
	suffixes := append([]string{""}, productIDSuffixes...)

	seen := map[string]struct{}{}
	out := []string{}
	for _, prefix := range prefixes {
		for _, suffix := range suffixes {
			candidate := prefix + query + suffix
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}

			out = append(out, candidate)
		}
	}

	return out
}

func similarity(a string, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}

	return 1 - float64(fuzzy.LevenshteinDistance(a, b))/float64(longest)
}
