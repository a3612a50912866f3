package binfilters

// BinFilter - typehint for these enums
type BinFilter int

/*
BinFilters - buy-it-now filters for ended-auction queries
*/
const (
	Either BinFilter = iota
	BinOnly
	AuctionOnly
)
