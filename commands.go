package main

/*
Command names
*/
const (
	cmdAPITest  = "api-test"
	cmdAuctions = "auctions"
	cmdEnded    = "ended"
	cmdPlayer   = "player"
	cmdBazaar   = "bazaar"
)
