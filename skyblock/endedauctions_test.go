package skyblock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/hypixel/codes"
	"github.com/sotah-inc/skyblock/app/skyblock/binfilters"
)

func newTestEndedAuctions(t *testing.T) (EndedAuctions, bool) {
	response, err := hypixel.NewEndedAuctionsFromFilepath("./TestData/auctions-ended.json")
	if !assert.Nil(t, err) {
		return EndedAuctions{}, false
	}

	return EndedAuctions{response: response}, true
}

func TestEndedAuctionsGetByID(t *testing.T) {
	ea, ok := newTestEndedAuctions(t)
	if !ok {
		return
	}

	auc, err := ea.GetByID("8a0b9f6f25f2460aa04dbb9ab3dfc91e")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, int64(250000), auc.Price)

	_, err = ea.GetByID("no-such-auction")
	assert.Equal(t, codes.NotFound, hypixel.ErrorCode(err))
}

func TestEndedAuctionsSearchBySeller(t *testing.T) {
	ea, ok := newTestEndedAuctions(t)
	if !ok {
		return
	}

	out := ea.Search(EndedFilter{Seller: "347ef6c1daac45ed9d1fa02818cf0fb6"})
	if !assert.Equal(t, 2, len(out)) {
		return
	}
	assert.Equal(t, "3e0d420e0b944b69ab0cbe69c7ca39b4", out[0].AuctionID)
	assert.Equal(t, "f6dc2f3188c44e0c86b55b8dbcb1e5aa", out[1].AuctionID)
}

func TestEndedAuctionsSearchByBuyer(t *testing.T) {
	ea, ok := newTestEndedAuctions(t)
	if !ok {
		return
	}

	out := ea.Search(EndedFilter{Buyer: "d3562bbc045f44dd9a4d54b6612e6a79"})
	assert.Equal(t, 2, len(out))
}

func TestEndedAuctionsSearchByPriceRange(t *testing.T) {
	ea, ok := newTestEndedAuctions(t)
	if !ok {
		return
	}

	out := ea.Search(EndedFilter{MinPrice: 1000000, MaxPrice: 2000000})
	if !assert.Equal(t, 1, len(out)) {
		return
	}
	assert.Equal(t, int64(1900000), out[0].Price)
}

func TestEndedAuctionsSearchByBinFilter(t *testing.T) {
	ea, ok := newTestEndedAuctions(t)
	if !ok {
		return
	}

	assert.Equal(t, 2, len(ea.Search(EndedFilter{Bin: binfilters.BinOnly})))
	assert.Equal(t, 1, len(ea.Search(EndedFilter{Bin: binfilters.AuctionOnly})))
	assert.Equal(t, 3, len(ea.Search(EndedFilter{Bin: binfilters.Either})))
}

func TestEndedAuctionsSearchConjunctive(t *testing.T) {
	ea, ok := newTestEndedAuctions(t)
	if !ok {
		return
	}

	out := ea.Search(EndedFilter{
		Seller:   "347ef6c1daac45ed9d1fa02818cf0fb6",
		Bin:      binfilters.BinOnly,
		MinPrice: 2000000,
	})
	if !assert.Equal(t, 1, len(out)) {
		return
	}
	assert.Equal(t, int64(5000000), out[0].Price)
}
