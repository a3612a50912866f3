package skyblock

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/hypixel/codes"
)

// NewPlayerAuctions - generates an authenticated client for per-player lookups
func NewPlayerAuctions(res hypixel.Resolver) PlayerAuctions {
	return PlayerAuctions{resolver: res}
}

// PlayerAuctions looks auctions up by auction uuid, player id, profile id, or
// display name. Every operation requires an api key on the resolver.
type PlayerAuctions struct {
	resolver hypixel.Resolver
}

// the upstream stores uuids without dashes, inputs are accepted either way
func normalizeUUID(in string) (string, error) {
	parsed, err := uuid.Parse(in)
	if err != nil {
		return "", hypixel.Error{
			Code:  codes.BadRequest,
			Cause: fmt.Sprintf("%s is not a valid uuid", in),
		}
	}

	return strings.ReplaceAll(parsed.String(), "-", ""), nil
}

// ByAuctionUUID returns the auction with the given public uuid
func (pa PlayerAuctions) ByAuctionUUID(id string) (hypixel.Auction, error) {
	normalized, err := normalizeUUID(id)
	if err != nil {
		return hypixel.Auction{}, err
	}

	response, err := hypixel.NewPlayerAuctionsFromHTTP(pa.resolver, hypixel.ParamAuctionUUID, normalized)
	if err != nil {
		return hypixel.Auction{}, err
	}

	if len(response.Auctions) == 0 {
		return hypixel.Auction{}, hypixel.Error{
			Code:  codes.NotFound,
			Cause: fmt.Sprintf("no auction exists with uuid %s", id),
		}
	}

	return response.Auctions[0], nil
}

// ByPlayer returns the auctions posted by the given player id
func (pa PlayerAuctions) ByPlayer(playerID string) ([]hypixel.Auction, error) {
	normalized, err := normalizeUUID(playerID)
	if err != nil {
		return nil, err
	}

	response, err := hypixel.NewPlayerAuctionsFromHTTP(pa.resolver, hypixel.ParamPlayer, normalized)
	if err != nil {
		return nil, err
	}

	return response.Auctions, nil
}

// ByProfile returns the auctions posted under the given profile id
func (pa PlayerAuctions) ByProfile(profileID string) ([]hypixel.Auction, error) {
	normalized, err := normalizeUUID(profileID)
	if err != nil {
		return nil, err
	}

	response, err := hypixel.NewPlayerAuctionsFromHTTP(pa.resolver, hypixel.ParamProfile, normalized)
	if err != nil {
		return nil, err
	}

	return response.Auctions, nil
}

// ByName resolves a display name through the identity api and returns that
// player's auctions. A failed identity lookup surfaces without touching the
// auction endpoint.
func (pa PlayerAuctions) ByName(name string) ([]hypixel.Auction, error) {
	profile, err := hypixel.NewProfileFromHTTP(pa.resolver, name)
	if err != nil {
		return nil, err
	}

	return pa.ByPlayer(profile.ID)
}
