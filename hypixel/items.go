package hypixel

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/sotah-inc/skyblock/app/hypixel/codes"
	"github.com/sotah-inc/skyblock/app/util"
)

// NewItemsResourceFromHTTP downloads the static skyblock items resource
func NewItemsResourceFromHTTP(res Resolver) (ItemsResource, error) {
	meta, err := res.Download(res.GetItemsURL())
	if err != nil {
		return ItemsResource{}, Error{Code: codes.Transport, Cause: err.Error()}
	}

	if err := validateEnvelope(meta); err != nil {
		return ItemsResource{}, err
	}

	return NewItemsResource(meta.Body)
}

// NewItemsResourceFromFilepath parses a json file for the items resource
func NewItemsResourceFromFilepath(relativeFilepath string) (ItemsResource, error) {
	body, err := util.ReadFile(relativeFilepath)
	if err != nil {
		return ItemsResource{}, err
	}

	return NewItemsResource(body)
}

// NewItemsResource parses a json byte array for the items resource
func NewItemsResource(body []byte) (ItemsResource, error) {
	out := &ItemsResource{}
	if err := json.Unmarshal(body, out); err != nil {
		return ItemsResource{}, Error{Code: codes.MalformedResponse, Cause: err.Error()}
	}

	return *out, nil
}

// ItemsResource describes the static items resource
type ItemsResource struct {
	Success     bool           `json:"success"`
	LastUpdated int64          `json:"lastUpdated"`
	Items       []ResourceItem `json:"items"`
}

// GetItem returns the item with the given skyblock id
func (ir ItemsResource) GetItem(id string) (ResourceItem, bool) {
	for _, item := range ir.Items {
		if item.ID == id {
			return item, true
		}
	}

	return ResourceItem{}, false
}

// ResourceItem describes one static item definition
type ResourceItem struct {
	ID           string  `json:"id"`
	Material     string  `json:"material"`
	Name         string  `json:"name"`
	Tier         string  `json:"tier"`
	Category     string  `json:"category"`
	NPCSellPrice float64 `json:"npc_sell_price"`
}

var colorCodePattern = regexp.MustCompile("§[0-9a-fk-orA-FK-OR]")

// StripColorCodes removes the in-game formatting markers from display text
func StripColorCodes(in string) string {
	return colorCodePattern.ReplaceAllString(in, "")
}

// NormalizedName resolves a lookup-friendly lowercase name for an item
func (ri ResourceItem) NormalizedName() string {
	return strings.TrimSpace(strings.ToLower(StripColorCodes(ri.Name)))
}
