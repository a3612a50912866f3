package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/skyblock"
)

func endedSearch(res hypixel.Resolver, f skyblock.EndedFilter) error {
	ended, err := skyblock.NewEndedAuctions(res)
	if err != nil {
		return err
	}

	matches := ended.Search(f)
	for _, auc := range matches {
		log.WithFields(log.Fields{
			"auction_id": auc.AuctionID,
			"seller":     auc.Seller,
			"buyer":      auc.Buyer,
			"price":      auc.Price,
			"bin":        auc.BIN,
			"ended":      auc.EndedAsTime(),
		}).Info("Matched ended auction")
	}
	log.WithField("matched", len(matches)).Info("Finished ended-auctions search")

	return nil
}
