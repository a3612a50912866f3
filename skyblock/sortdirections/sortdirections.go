package sortdirections

// SortDirection - typehint for these enums
type SortDirection int

/*
SortDirections - recognized sort directions for auction queries
*/
const (
	Up SortDirection = iota
	Down
)
