package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/skyblock"
)

func bazaarSearch(res hypixel.Resolver, query string) error {
	bi, err := skyblock.NewBazaarIndex(res)
	if err != nil {
		return err
	}

	product, err := bi.Search(query)
	if err != nil {
		return err
	}

	fields := log.Fields{
		"product_id":  product.ProductID,
		"sell_price":  product.QuickStatus.SellPrice,
		"buy_price":   product.QuickStatus.BuyPrice,
		"sell_volume": product.QuickStatus.SellVolume,
		"buy_volume":  product.QuickStatus.BuyVolume,
	}
	if topBuy, err := bi.TopBuy(product.ProductID); err == nil {
		fields["top_buy"] = topBuy.PricePerUnit
	}
	if topSell, err := bi.TopSell(product.ProductID); err == nil {
		fields["top_sell"] = topSell.PricePerUnit
	}
	log.WithFields(fields).Info("Matched product")

	return nil
}
