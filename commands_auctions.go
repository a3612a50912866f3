package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/skyblock"
	"github.com/sotah-inc/skyblock/app/skyblock/sortdirections"
	"github.com/sotah-inc/skyblock/app/skyblock/sortkinds"
)

func auctionsSearch(
	res hypixel.Resolver,
	f skyblock.Filter,
	kind sortkinds.SortKind,
	direction sortdirections.SortDirection,
) error {
	la := skyblock.NewLiveAuctions(res)
	matches, err := la.Search(f, kind, direction)
	if err != nil {
		return err
	}

	for _, auc := range matches {
		log.WithFields(log.Fields{
			"uuid":          auc.UUID,
			"item":          auc.ItemName,
			"tier":          auc.Tier,
			"current_price": auc.CurrentPrice(),
			"bin":           auc.IsBIN(),
			"ends":          auc.EndAsTime(),
		}).Info("Matched auction")
	}
	log.WithField("matched", len(matches)).Info("Finished auctions search")

	return nil
}
