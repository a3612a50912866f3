package sortkinds

// SortKind - typehint for these enums
type SortKind int

/*
SortKinds - recognized sort keys for auction queries
*/
const (
	None SortKind = iota
	CurrentPrice
)
