package skyblock

import (
	"fmt"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/hypixel/codes"
	"github.com/sotah-inc/skyblock/app/skyblock/binfilters"
)

// NewEndedAuctions - fetches the recently-ended window once and holds it in
// memory. The store never refreshes; construct a new one for fresh data.
func NewEndedAuctions(res hypixel.Resolver) (EndedAuctions, error) {
	response, err := hypixel.NewEndedAuctionsFromHTTP(res)
	if err != nil {
		return EndedAuctions{}, err
	}

	return EndedAuctions{response: response}, nil
}

// EndedAuctions is a queryable snapshot of the recently-ended window
type EndedAuctions struct {
	response hypixel.EndedAuctions
}

// Auctions returns the held window in upstream order
func (ea EndedAuctions) Auctions() []hypixel.EndedAuction {
	return ea.response.Auctions
}

// GetByID returns the ended auction with the given auction id
func (ea EndedAuctions) GetByID(id string) (hypixel.EndedAuction, error) {
	for _, auc := range ea.response.Auctions {
		if auc.AuctionID == id {
			return auc, nil
		}
	}

	return hypixel.EndedAuction{}, hypixel.Error{
		Code:  codes.NotFound,
		Cause: fmt.Sprintf("no ended auction exists with id %s", id),
	}
}

// EndedFilter - conjunctive criteria over the ended window. Zero values leave
// the corresponding criterion unbounded.
type EndedFilter struct {
	Seller   string
	Buyer    string
	MinPrice int64
	MaxPrice int64
	Bin      binfilters.BinFilter
}

func (f EndedFilter) matches(auc hypixel.EndedAuction) bool {
	if f.Seller != "" && auc.Seller != f.Seller {
		return false
	}
	if f.Buyer != "" && auc.Buyer != f.Buyer {
		return false
	}

	if auc.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && auc.Price > f.MaxPrice {
		return false
	}

	switch f.Bin {
	case binfilters.BinOnly:
		return auc.BIN
	case binfilters.AuctionOnly:
		return !auc.BIN
	}

	return true
}

// Search applies a filter over the held window, preserving upstream order
func (ea EndedAuctions) Search(f EndedFilter) []hypixel.EndedAuction {
	out := []hypixel.EndedAuction{}
	for _, auc := range ea.response.Auctions {
		if !f.matches(auc) {
			continue
		}

		out = append(out, auc)
	}

	return out
}
