package hypixel

import (
	"encoding/json"
	"time"

	"github.com/sotah-inc/skyblock/app/hypixel/codes"
	"github.com/sotah-inc/skyblock/app/util"
)

// NewEndedAuctionsFromHTTP downloads the recently-ended auctions window
func NewEndedAuctionsFromHTTP(res Resolver) (EndedAuctions, error) {
	meta, err := res.Download(res.GetEndedAuctionsURL())
	if err != nil {
		return EndedAuctions{}, Error{Code: codes.Transport, Cause: err.Error()}
	}

	if err := validateEnvelope(meta); err != nil {
		return EndedAuctions{}, err
	}

	return NewEndedAuctions(meta.Body)
}

// NewEndedAuctionsFromFilepath parses a json file for the ended-auctions window
func NewEndedAuctionsFromFilepath(relativeFilepath string) (EndedAuctions, error) {
	body, err := util.ReadFile(relativeFilepath)
	if err != nil {
		return EndedAuctions{}, err
	}

	return NewEndedAuctions(body)
}

// NewEndedAuctions parses a json byte array for the ended-auctions window
func NewEndedAuctions(body []byte) (EndedAuctions, error) {
	out := &EndedAuctions{}
	if err := json.Unmarshal(body, out); err != nil {
		return EndedAuctions{}, Error{Code: codes.MalformedResponse, Cause: err.Error()}
	}

	return *out, nil
}

// EndedAuctions describes the recently-ended auctions window
type EndedAuctions struct {
	Success     bool           `json:"success"`
	LastUpdated int64          `json:"lastUpdated"`
	Auctions    []EndedAuction `json:"auctions"`
}

// LastUpdatedAsTime returns a parsed last-updated
func (ea EndedAuctions) LastUpdatedAsTime() time.Time {
	return TimestampToTime(ea.LastUpdated)
}

// EndedAuction describes a single recently-ended auction. Unlike the active
// listing it carries an authoritative BIN flag and no bid history.
type EndedAuction struct {
	AuctionID     string `json:"auction_id"`
	Seller        string `json:"seller"`
	SellerProfile string `json:"seller_profile"`
	Buyer         string `json:"buyer"`
	BuyerProfile  string `json:"buyer_profile"`
	Timestamp     int64  `json:"timestamp"`
	Price         int64  `json:"price"`
	BIN           bool   `json:"bin"`
	ItemBytes     string `json:"item_bytes"`
}

// EndedAsTime returns a parsed ended-at
func (ea EndedAuction) EndedAsTime() time.Time {
	return TimestampToTime(ea.Timestamp)
}

// EndedIn returns the ended-at shifted into the given zone
func (ea EndedAuction) EndedIn(loc *time.Location) time.Time {
	return TimestampIn(ea.Timestamp, loc)
}
