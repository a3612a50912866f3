package hypixel

import (
	"fmt"
	"net/url"
	"time"
)

// DefaultHypixelHost - the production hypixel api host
const DefaultHypixelHost = "https://api.hypixel.net"

// DefaultMojangHost - the production mojang identity api host
const DefaultMojangHost = "https://api.mojang.com"

const defaultTimeout = 20 * time.Second

// DefaultGetAuctionsURL generates a url for fetching one page of the active auctions listing
func DefaultGetAuctionsURL(host string, page int) string {
	return fmt.Sprintf("%s/skyblock/auctions?page=%d", host, page)
}

// GetAuctionsURLFunc defines the expected function signature for generating an auctions-page url
type GetAuctionsURLFunc func(page int) string

// DefaultGetEndedAuctionsURL generates a url for fetching the recently-ended window
func DefaultGetEndedAuctionsURL(host string) string {
	return fmt.Sprintf("%s/skyblock/auctions_ended", host)
}

// GetEndedAuctionsURLFunc defines the expected function signature for generating an ended-auctions url
type GetEndedAuctionsURLFunc func() string

// DefaultGetPlayerAuctionsURL generates a url for the authenticated player-auction lookup
func DefaultGetPlayerAuctionsURL(host string, param PlayerAuctionsParam, value string) string {
	return fmt.Sprintf("%s/skyblock/auction?%s=%s", host, param, url.QueryEscape(value))
}

// GetPlayerAuctionsURLFunc defines the expected function signature for generating a player-auctions url
type GetPlayerAuctionsURLFunc func(param PlayerAuctionsParam, value string) string

// DefaultGetBazaarURL generates a url for fetching the bazaar
func DefaultGetBazaarURL(host string) string {
	return fmt.Sprintf("%s/skyblock/bazaar", host)
}

// GetBazaarURLFunc defines the expected function signature for generating a bazaar url
type GetBazaarURLFunc func() string

// DefaultGetItemsURL generates a url for fetching the skyblock items resource
func DefaultGetItemsURL(host string) string {
	return fmt.Sprintf("%s/resources/skyblock/items", host)
}

// GetItemsURLFunc defines the expected function signature for generating an items-resource url
type GetItemsURLFunc func() string

// DefaultGetProfileURL generates a url for resolving a display name against the identity api
func DefaultGetProfileURL(host string, name string) string {
	return fmt.Sprintf("%s/users/profiles/minecraft/%s", host, url.PathEscape(name))
}

// GetProfileURLFunc defines the expected function signature for generating an identity-lookup url
type GetProfileURLFunc func(name string) string

// NewResolver - generates a resolver against the production hosts
func NewResolver(apiKey string) Resolver {
	return NewResolverForHosts(apiKey, DefaultHypixelHost, DefaultMojangHost)
}

// NewResolverForHosts - generates a resolver with overridden api hosts
func NewResolverForHosts(apiKey string, hypixelHost string, mojangHost string) Resolver {
	return Resolver{
		APIKey:  apiKey,
		Timeout: defaultTimeout,

		GetAuctionsURL: func(page int) string {
			return DefaultGetAuctionsURL(hypixelHost, page)
		},
		GetEndedAuctionsURL: func() string {
			return DefaultGetEndedAuctionsURL(hypixelHost)
		},
		GetPlayerAuctionsURL: func(param PlayerAuctionsParam, value string) string {
			return DefaultGetPlayerAuctionsURL(hypixelHost, param, value)
		},
		GetBazaarURL: func() string {
			return DefaultGetBazaarURL(hypixelHost)
		},
		GetItemsURL: func() string {
			return DefaultGetItemsURL(hypixelHost)
		},
		GetProfileURL: func(name string) string {
			return DefaultGetProfileURL(mojangHost, name)
		},
	}
}

// Resolver - used for resolving requests against the apis
type Resolver struct {
	APIKey  string
	Timeout time.Duration

	GetAuctionsURL       GetAuctionsURLFunc
	GetEndedAuctionsURL  GetEndedAuctionsURLFunc
	GetPlayerAuctionsURL GetPlayerAuctionsURLFunc
	GetBazaarURL         GetBazaarURLFunc
	GetItemsURL          GetItemsURLFunc
	GetProfileURL        GetProfileURLFunc
}

// AppendAPIKey - appends the api key used for making authenticated requests
func (r Resolver) AppendAPIKey(destination string) (string, error) {
	if r.APIKey == "" {
		return destination, nil
	}

	u, err := url.Parse(destination)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("key", r.APIKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Download - performs a GET against the given url with this resolver's timeout
func (r Resolver) Download(uri string) (ResponseMeta, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return Download(uri, timeout)
}
