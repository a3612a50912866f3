package skyblock

import (
	"fmt"
	"sort"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/hypixel/codes"
)

// NewBazaarIndex - fetches the bazaar once and builds the lookup index over
// it. Construction is all-or-nothing, a fetch failure leaves no usable index.
func NewBazaarIndex(res hypixel.Resolver) (BazaarIndex, error) {
	response, err := hypixel.NewBazaarFromHTTP(res)
	if err != nil {
		return BazaarIndex{}, err
	}

	return NewBazaarIndexFromResponse(response), nil
}

// NewBazaarIndexFromResponse builds the lookup index over a decoded bazaar.
// Canonical ids are indexed in lexicographic order, on a normalized-id
// collision the later id wins.
func NewBazaarIndexFromResponse(response hypixel.Bazaar) BazaarIndex {
	ids := make([]string, 0, len(response.Products))
	for id := range response.Products {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	normalizedIDs := make([]string, len(ids))
	normalized := map[string]string{}
	for i, id := range ids {
		normalizedIDs[i] = normalizeProductID(id)
		normalized[normalizedIDs[i]] = id
	}

	return BazaarIndex{
		products:      response.Products,
		ids:           ids,
		normalizedIDs: normalizedIDs,
		normalized:    normalized,
		lastUpdated:   response.LastUpdated,
	}
}

// BazaarIndex holds the bazaar snapshot with exact and fuzzy product lookup.
// It is not mutated after construction.
type BazaarIndex struct {
	products      map[string]hypixel.Product
	ids           []string
	normalizedIDs []string
	normalized    map[string]string
	lastUpdated   int64
}

// ProductIDs returns the canonical product ids in index order
func (bi BazaarIndex) ProductIDs() []string {
	return bi.ids
}

// Get returns the product with the given canonical id
func (bi BazaarIndex) Get(id string) (hypixel.Product, bool) {
	p, ok := bi.products[id]

	return p, ok
}

// TopBuy returns the best order-book level a seller can fill into
func (bi BazaarIndex) TopBuy(id string) (hypixel.OrderSummary, error) {
	p, ok := bi.products[id]
	if !ok {
		return hypixel.OrderSummary{}, hypixel.Error{
			Code:  codes.NotFound,
			Cause: fmt.Sprintf("no product exists with id %s", id),
		}
	}

	if len(p.BuySummary) == 0 {
		return hypixel.OrderSummary{}, hypixel.Error{
			Code:  codes.NotFound,
			Cause: fmt.Sprintf("product %s has no buy orders", id),
		}
	}

	return p.BuySummary[0], nil
}

// TopSell returns the best order-book level a buyer can fill against
func (bi BazaarIndex) TopSell(id string) (hypixel.OrderSummary, error) {
	p, ok := bi.products[id]
	if !ok {
		return hypixel.OrderSummary{}, hypixel.Error{
			Code:  codes.NotFound,
			Cause: fmt.Sprintf("no product exists with id %s", id),
		}
	}

	if len(p.SellSummary) == 0 {
		return hypixel.OrderSummary{}, hypixel.Error{
			Code:  codes.NotFound,
			Cause: fmt.Sprintf("product %s has no sell orders", id),
		}
	}

	return p.SellSummary[0], nil
}
