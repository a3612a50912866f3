package hypixel

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sotah-inc/skyblock/app/hypixel/codes"
	"github.com/sotah-inc/skyblock/app/util"
)

// NewAuctionsPageFromHTTP downloads one page of the active auctions listing
func NewAuctionsPageFromHTTP(res Resolver, page int) (AuctionsPage, error) {
	meta, err := res.Download(res.GetAuctionsURL(page))
	if err != nil {
		return AuctionsPage{}, Error{Code: codes.Transport, Cause: err.Error()}
	}

	if err := validateEnvelope(meta); err != nil {
		return AuctionsPage{}, err
	}

	out, err := NewAuctionsPage(meta.Body)
	if err != nil {
		return AuctionsPage{}, err
	}

	if out.Page != page {
		return AuctionsPage{}, Error{
			Code:  codes.MalformedResponse,
			Cause: fmt.Sprintf("requested page %d but received page %d", page, out.Page),
		}
	}

	if out.Page >= out.TotalPages {
		return AuctionsPage{}, Error{
			Code:  codes.MalformedResponse,
			Cause: fmt.Sprintf("page %d is out of range of %d total pages", out.Page, out.TotalPages),
		}
	}

	return out, nil
}

// NewAuctionsPageFromFilepath parses a json file for an auctions page
func NewAuctionsPageFromFilepath(relativeFilepath string) (AuctionsPage, error) {
	body, err := util.ReadFile(relativeFilepath)
	if err != nil {
		return AuctionsPage{}, err
	}

	return NewAuctionsPage(body)
}

// NewAuctionsPage parses a json byte array for an auctions page
func NewAuctionsPage(body []byte) (AuctionsPage, error) {
	p := &AuctionsPage{}
	if err := json.Unmarshal(body, p); err != nil {
		return AuctionsPage{}, Error{Code: codes.MalformedResponse, Cause: err.Error()}
	}

	return *p, nil
}

// AuctionsPage describes one page of the paginated active auctions listing
type AuctionsPage struct {
	Success       bool      `json:"success"`
	Page          int       `json:"page"`
	TotalPages    int       `json:"totalPages"`
	TotalAuctions int       `json:"totalAuctions"`
	LastUpdated   int64     `json:"lastUpdated"`
	Auctions      []Auction `json:"auctions"`
}

// LastUpdatedAsTime returns a parsed last-updated
func (p AuctionsPage) LastUpdatedAsTime() time.Time {
	return TimestampToTime(p.LastUpdated)
}

// Auction describes a single active auction
type Auction struct {
	ID               string   `json:"_id"`
	UUID             string   `json:"uuid"`
	Auctioneer       string   `json:"auctioneer"`
	ProfileID        string   `json:"profile_id"`
	Coop             []string `json:"coop"`
	Start            int64    `json:"start"`
	End              int64    `json:"end"`
	ItemName         string   `json:"item_name"`
	ItemLore         string   `json:"item_lore"`
	Extra            string   `json:"extra"`
	Category         string   `json:"category"`
	Tier             string   `json:"tier"`
	StartingBid      int64    `json:"starting_bid"`
	ItemBytes        string   `json:"item_bytes"`
	Claimed          bool     `json:"claimed"`
	ClaimedBidders   []string `json:"claimed_bidders"`
	HighestBidAmount int64    `json:"highest_bid_amount"`
	Bids             []Bid    `json:"bids"`
}

// CurrentPrice resolves the price a buyer would have to beat, never below the starting bid
func (a Auction) CurrentPrice() int64 {
	if len(a.Bids) == 0 {
		return a.StartingBid
	}

	if a.HighestBidAmount > a.StartingBid {
		return a.HighestBidAmount
	}

	return a.StartingBid
}

// IsBIN resolves whether this looks like a buy-it-now listing. The active
// listing feed carries no explicit flag, so an empty bid list is the best
// available signal.
func (a Auction) IsBIN() bool {
	return len(a.Bids) == 0
}

// StartAsTime returns a parsed start
func (a Auction) StartAsTime() time.Time {
	return TimestampToTime(a.Start)
}

// EndAsTime returns a parsed end
func (a Auction) EndAsTime() time.Time {
	return TimestampToTime(a.End)
}

// StartIn returns the start shifted into the given zone
func (a Auction) StartIn(loc *time.Location) time.Time {
	return TimestampIn(a.Start, loc)
}

// EndIn returns the end shifted into the given zone
func (a Auction) EndIn(loc *time.Location) time.Time {
	return TimestampIn(a.End, loc)
}

// Bid describes a single bid on an active auction
type Bid struct {
	AuctionID string `json:"auction_id"`
	Bidder    string `json:"bidder"`
	ProfileID string `json:"profile_id"`
	Amount    int64  `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

// PlacedAsTime returns a parsed placed-at
func (b Bid) PlacedAsTime() time.Time {
	return TimestampToTime(b.Timestamp)
}
