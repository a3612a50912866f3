package skyblock

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/logging"
	"github.com/sotah-inc/skyblock/app/skyblock/sortdirections"
	"github.com/sotah-inc/skyblock/app/skyblock/sortkinds"
)

type auctionSortFn func([]hypixel.Auction)

func newAuctionSorter() auctionSorter {
	return auctionSorter{
		"current-price": func(aucs []hypixel.Auction) {
			logging.WithField("sort-kind", "current-price").Debug("Sorting")
			sort.Stable(byCurrentPrice(aucs))
		},
		"current-price-r": func(aucs []hypixel.Auction) {
			logging.WithField("sort-kind", "current-price-r").Debug("Sorting")
			sort.Stable(byCurrentPriceReversed(aucs))
		},
	}
}

type auctionSorter map[string]auctionSortFn

func (as auctionSorter) sort(
	kind sortkinds.SortKind,
	direction sortdirections.SortDirection,
	data []hypixel.Auction,
) error {
	// resolving the sort kind as a string
	kindMap := map[sortkinds.SortKind]string{
		sortkinds.CurrentPrice: "current-price",
	}
	resolvedKind, ok := kindMap[kind]
	if !ok {
		return errors.New("invalid sort kind")
	}

	if direction == sortdirections.Down {
		resolvedKind = fmt.Sprintf("%s-r", resolvedKind)
	}

	// resolving the sort func
	sortFn, ok := as[resolvedKind]
	if !ok {
		return errors.New("sorter not found")
	}

	sortFn(data)

	return nil
}

type byCurrentPrice []hypixel.Auction

func (by byCurrentPrice) Len() int           { return len(by) }
func (by byCurrentPrice) Swap(i, j int)      { by[i], by[j] = by[j], by[i] }
func (by byCurrentPrice) Less(i, j int) bool { return by[i].CurrentPrice() < by[j].CurrentPrice() }

type byCurrentPriceReversed []hypixel.Auction

func (by byCurrentPriceReversed) Len() int      { return len(by) }
func (by byCurrentPriceReversed) Swap(i, j int) { by[i], by[j] = by[j], by[i] }
func (by byCurrentPriceReversed) Less(i, j int) bool {
	return by[i].CurrentPrice() > by[j].CurrentPrice()
}
