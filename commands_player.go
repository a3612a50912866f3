package main

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/skyblock"
)

func playerAuctions(res hypixel.Resolver, name string, playerUUID string, profileUUID string) error {
	pa := skyblock.NewPlayerAuctions(res)

	aucs, err := func() ([]hypixel.Auction, error) {
		switch {
		case name != "":
			return pa.ByName(name)
		case playerUUID != "":
			return pa.ByPlayer(playerUUID)
		case profileUUID != "":
			return pa.ByProfile(profileUUID)
		}

		return nil, errors.New("one of name, uuid, or profile is required")
	}()
	if err != nil {
		return err
	}

	for _, auc := range aucs {
		log.WithFields(log.Fields{
			"uuid":          auc.UUID,
			"item":          auc.ItemName,
			"current_price": auc.CurrentPrice(),
			"claimed":       auc.Claimed,
			"ends":          auc.EndAsTime(),
		}).Info("Player auction")
	}
	log.WithField("auctions", len(aucs)).Info("Finished player lookup")

	return nil
}
