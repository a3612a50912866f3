package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/skyblock"
)

func apiTest(res hypixel.Resolver) error {
	log.Info("Starting api-test")

	// fetching the first page of the active listing
	la := skyblock.NewLiveAuctions(res)
	page, err := la.GetPage(0)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"total_pages":    page.TotalPages,
		"total_auctions": page.TotalAuctions,
		"last_updated":   page.LastUpdatedAsTime(),
	}).Info("Fetched active auctions page")

	// fetching the recently-ended window
	ended, err := skyblock.NewEndedAuctions(res)
	if err != nil {
		return err
	}
	log.WithField("auctions", len(ended.Auctions())).Info("Fetched ended auctions")

	// building the bazaar index
	bi, err := skyblock.NewBazaarIndex(res)
	if err != nil {
		return err
	}
	log.WithField("products", len(bi.ProductIDs())).Info("Built bazaar index")

	return nil
}
