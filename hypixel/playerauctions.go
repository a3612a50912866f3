package hypixel

import (
	"encoding/json"

	"github.com/sotah-inc/skyblock/app/hypixel/codes"
)

// PlayerAuctionsParam - typehint for these enums
type PlayerAuctionsParam string

/*
PlayerAuctionsParams - the mutually-exclusive lookup parameters of the player-auction endpoint
*/
const (
	ParamAuctionUUID PlayerAuctionsParam = "uuid"
	ParamPlayer      PlayerAuctionsParam = "player"
	ParamProfile     PlayerAuctionsParam = "profile"
)

// NewPlayerAuctionsFromHTTP performs an authenticated player-auction lookup
func NewPlayerAuctionsFromHTTP(res Resolver, param PlayerAuctionsParam, value string) (PlayerAuctions, error) {
	if res.APIKey == "" {
		return PlayerAuctions{}, Error{Code: codes.Forbidden, Cause: "api key is blank"}
	}

	uri, err := res.AppendAPIKey(res.GetPlayerAuctionsURL(param, value))
	if err != nil {
		return PlayerAuctions{}, Error{Code: codes.BadRequest, Cause: err.Error()}
	}

	meta, err := res.Download(uri)
	if err != nil {
		return PlayerAuctions{}, Error{Code: codes.Transport, Cause: err.Error()}
	}

	if err := validateEnvelope(meta); err != nil {
		return PlayerAuctions{}, err
	}

	return NewPlayerAuctions(meta.Body)
}

// NewPlayerAuctions parses a json byte array for a player-auction lookup
func NewPlayerAuctions(body []byte) (PlayerAuctions, error) {
	out := &PlayerAuctions{}
	if err := json.Unmarshal(body, out); err != nil {
		return PlayerAuctions{}, Error{Code: codes.MalformedResponse, Cause: err.Error()}
	}

	return *out, nil
}

// PlayerAuctions describes the player-auction lookup response
type PlayerAuctions struct {
	Success  bool      `json:"success"`
	Auctions []Auction `json:"auctions"`
}
