package skyblock

import (
	"strings"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/skyblock/sortdirections"
	"github.com/sotah-inc/skyblock/app/skyblock/sortkinds"
)

// Filter - conjunctive criteria over the active auctions listing. Zero values
// leave the corresponding criterion unbounded.
type Filter struct {
	ItemName string
	MinPrice int64
	MaxPrice int64
	MaxPages int
}

func (f Filter) matches(auc hypixel.Auction) bool {
	if f.ItemName != "" {
		if !strings.Contains(strings.ToLower(auc.ItemName), strings.ToLower(f.ItemName)) {
			return false
		}
	}

	price := auc.CurrentPrice()
	if price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && price > f.MaxPrice {
		return false
	}

	return true
}

// Search applies a filter over the listing, sweeping up to MaxPages pages
// (all of them when unset), and optionally sorts the result. Unsorted results
// preserve page order.
func (la *LiveAuctions) Search(
	f Filter,
	kind sortkinds.SortKind,
	direction sortdirections.SortDirection,
) ([]hypixel.Auction, error) {
	aucs, err := la.gather(f.MaxPages)
	if err != nil {
		return nil, err
	}

	out := []hypixel.Auction{}
	for _, auc := range aucs {
		if !f.matches(auc) {
			continue
		}

		out = append(out, auc)
	}

	if kind != sortkinds.None {
		if err := newAuctionSorter().sort(kind, direction, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (la *LiveAuctions) gather(maxPages int) ([]hypixel.Auction, error) {
	if maxPages <= 0 {
		return la.GetAll()
	}

	first, err := la.GetPage(0)
	if err != nil {
		return nil, err
	}

	limit := maxPages
	if first.TotalPages < limit {
		limit = first.TotalPages
	}

	out := []hypixel.Auction{}
	out = append(out, first.Auctions...)
	for page := 1; page < limit; page++ {
		p, err := la.GetPage(page)
		if err != nil {
			return nil, err
		}

		out = append(out, p.Auctions...)
	}

	return out, nil
}
