package skyblock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/hypixel/codes"
)

func newTestBazaarIndex(t *testing.T) (BazaarIndex, bool) {
	response, err := hypixel.NewBazaarFromFilepath("./TestData/bazaar.json")
	if !assert.Nil(t, err) {
		return BazaarIndex{}, false
	}

	return NewBazaarIndexFromResponse(response), true
}

func TestProductIDsSorted(t *testing.T) {
	bi, ok := newTestBazaarIndex(t)
	if !ok {
		return
	}

	expected := []string{
		"DIAMOND",
		"ENCHANTMENT_ULTIMATE_WISDOM_5",
		"ESSENCE_WITHER",
		"INK_SACK:3",
		"MITHRIL_ORE",
	}
	assert.Equal(t, expected, bi.ProductIDs())
}

func TestGet(t *testing.T) {
	bi, ok := newTestBazaarIndex(t)
	if !ok {
		return
	}

	p, found := bi.Get("DIAMOND")
	if !assert.True(t, found) {
		return
	}
	assert.Equal(t, 8.1, p.QuickStatus.SellPrice)

	_, found = bi.Get("NO_SUCH_PRODUCT")
	assert.False(t, found)
}

func TestSearchResolvesEveryCanonicalID(t *testing.T) {
	bi, ok := newTestBazaarIndex(t)
	if !ok {
		return
	}

	for _, id := range bi.ProductIDs() {
		p, err := bi.Search(id)
		if !assert.Nil(t, err) {
			return
		}

		assert.Equal(t, id, p.ProductID)
	}
}

func TestSearchFreeForm(t *testing.T) {
	bi, ok := newTestBazaarIndex(t)
	if !ok {
		return
	}

	cases := map[string]string{
		"diamond":           "DIAMOND",
		"ink sack 3":        "INK_SACK:3",
		"wisdom 5":          "ENCHANTMENT_ULTIMATE_WISDOM_5",
		"ultimate wisdom 5": "ENCHANTMENT_ULTIMATE_WISDOM_5",
		"wither":            "ESSENCE_WITHER",
		"mithril":           "MITHRIL_ORE",
	}
	for query, expectedID := range cases {
		p, err := bi.Search(query)
		if !assert.Nil(t, err) {
			return
		}

		assert.Equal(t, expectedID, p.ProductID)
	}
}

func TestSearchFuzzyTypo(t *testing.T) {
	bi, ok := newTestBazaarIndex(t)
	if !ok {
		return
	}

	p, err := bi.Search("diamnd")
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, "DIAMOND", p.ProductID)
}

func TestSearchNoMatch(t *testing.T) {
	bi, ok := newTestBazaarIndex(t)
	if !ok {
		return
	}

	_, err := bi.Search("xyzzy")
	if !assert.NotNil(t, err) {
		return
	}

	assert.Equal(t, codes.NotFound, hypixel.ErrorCode(err))
}

func TestTopBuy(t *testing.T) {
	bi, ok := newTestBazaarIndex(t)
	if !ok {
		return
	}

	level, err := bi.TopBuy("INK_SACK:3")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, 4.8, level.PricePerUnit)

	_, err = bi.TopBuy("NO_SUCH_PRODUCT")
	assert.Equal(t, codes.NotFound, hypixel.ErrorCode(err))
}

func TestTopSell(t *testing.T) {
	bi, ok := newTestBazaarIndex(t)
	if !ok {
		return
	}

	level, err := bi.TopSell("INK_SACK:3")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, 4.2, level.PricePerUnit)
}
