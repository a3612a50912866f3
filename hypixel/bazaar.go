package hypixel

import (
	"encoding/json"
	"time"

	"github.com/sotah-inc/skyblock/app/hypixel/codes"
	"github.com/sotah-inc/skyblock/app/util"
)

// NewBazaarFromHTTP downloads the full bazaar order book
func NewBazaarFromHTTP(res Resolver) (Bazaar, error) {
	meta, err := res.Download(res.GetBazaarURL())
	if err != nil {
		return Bazaar{}, Error{Code: codes.Transport, Cause: err.Error()}
	}

	if err := validateEnvelope(meta); err != nil {
		return Bazaar{}, err
	}

	return NewBazaar(meta.Body)
}

// NewBazaarFromFilepath parses a json file for the bazaar
func NewBazaarFromFilepath(relativeFilepath string) (Bazaar, error) {
	body, err := util.ReadFile(relativeFilepath)
	if err != nil {
		return Bazaar{}, err
	}

	return NewBazaar(body)
}

// NewBazaar parses a json byte array for the bazaar
func NewBazaar(body []byte) (Bazaar, error) {
	out := &Bazaar{}
	if err := json.Unmarshal(body, out); err != nil {
		return Bazaar{}, Error{Code: codes.MalformedResponse, Cause: err.Error()}
	}

	return *out, nil
}

// Bazaar describes the full bazaar order book, keyed by canonical product id
type Bazaar struct {
	Success     bool               `json:"success"`
	LastUpdated int64              `json:"lastUpdated"`
	Products    map[string]Product `json:"products"`
}

// LastUpdatedAsTime returns a parsed last-updated
func (b Bazaar) LastUpdatedAsTime() time.Time {
	return TimestampToTime(b.LastUpdated)
}

// Product describes one bazaar product. Summaries arrive sorted best-first
// from the upstream and source order is preserved.
type Product struct {
	ProductID   string         `json:"product_id"`
	SellSummary []OrderSummary `json:"sell_summary"`
	BuySummary  []OrderSummary `json:"buy_summary"`
	QuickStatus QuickStatus    `json:"quick_status"`
}

// OrderSummary describes one aggregated order-book level
type OrderSummary struct {
	Amount       int64   `json:"amount"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Orders       int     `json:"orders"`
}

// QuickStatus describes the weighted top-of-book prices and volumes of a product
type QuickStatus struct {
	ProductID      string  `json:"productId"`
	SellPrice      float64 `json:"sellPrice"`
	SellVolume     int64   `json:"sellVolume"`
	SellMovingWeek int64   `json:"sellMovingWeek"`
	SellOrders     int     `json:"sellOrders"`
	BuyPrice       float64 `json:"buyPrice"`
	BuyVolume      int64   `json:"buyVolume"`
	BuyMovingWeek  int64   `json:"buyMovingWeek"`
	BuyOrders      int     `json:"buyOrders"`
}
