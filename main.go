package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/sotah-inc/skyblock/app/logging"
	"github.com/sotah-inc/skyblock/app/skyblock"
	"github.com/sotah-inc/skyblock/app/skyblock/binfilters"
	"github.com/sotah-inc/skyblock/app/skyblock/sortdirections"
	"github.com/sotah-inc/skyblock/app/skyblock/sortkinds"
)

func main() {
	// optionally loading a .env file
	if err := godotenv.Load(); err != nil {
		logging.WithField("error", err.Error()).Debug("Could not load .env file")
	}

	// parsing the command flags
	var (
		app            = kingpin.New("skyblock-client", "A command-line Hypixel SkyBlock API client.")
		configFilepath = app.Flag("config", "Relative path to config json").Short('c').String()
		apiKey         = app.Flag("api-key", "Hypixel API key").OverrideDefaultFromEnvar("HYPIXEL_API_KEY").String()
		verbosity      = app.Flag("verbosity", "Log verbosity").Default("info").Short('v').String()

		apiTestCommand = app.Command(cmdAPITest, "Runs a live smoke test against the apis.")

		auctionsCommand   = app.Command(cmdAuctions, "Searches the active auctions listing.")
		auctionsItemName  = auctionsCommand.Flag("item", "Item name substring").String()
		auctionsMinPrice  = auctionsCommand.Flag("min-price", "Minimum current price").Int64()
		auctionsMaxPrice  = auctionsCommand.Flag("max-price", "Maximum current price").Int64()
		auctionsMaxPages  = auctionsCommand.Flag("max-pages", "Bound on the page sweep").Int()
		auctionsSorted    = auctionsCommand.Flag("sort", "Sort by current price").Bool()
		auctionsDescended = auctionsCommand.Flag("descending", "Sort highest price first").Bool()

		endedCommand  = app.Command(cmdEnded, "Searches the recently-ended window.")
		endedSeller   = endedCommand.Flag("seller", "Seller player id").String()
		endedBuyer    = endedCommand.Flag("buyer", "Buyer player id").String()
		endedMinPrice = endedCommand.Flag("min-price", "Minimum final price").Int64()
		endedMaxPrice = endedCommand.Flag("max-price", "Maximum final price").Int64()
		endedBin      = endedCommand.Flag("bin", "BIN filter").Default("either").Enum("either", "bin", "auction")

		playerCommand = app.Command(cmdPlayer, "Looks auctions up for one player (requires api key).")
		playerName    = playerCommand.Flag("name", "Display name").String()
		playerUUID    = playerCommand.Flag("uuid", "Player uuid").String()
		playerProfile = playerCommand.Flag("profile", "Profile uuid").String()

		bazaarCommand = app.Command(cmdBazaar, "Searches the bazaar for a product.")
		bazaarQuery   = bazaarCommand.Arg("query", "Free-form product query").Required().String()
	)
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// resolving the log verbosity
	logVerbosity, err := log.ParseLevel(*verbosity)
	if err != nil {
		log.Fatalf("Could not parse log level: %s\n", err.Error())

		return
	}
	logging.SetLevel(logVerbosity)

	// optionally loading the config file
	c := config{}
	if *configFilepath != "" {
		c, err = newConfigFromFilepath(*configFilepath)
		if err != nil {
			log.Fatalf("Could not fetch config: %s\n", err.Error())

			return
		}
	}

	// optionally overriding api key in config
	if len(*apiKey) > 0 {
		c.APIKey = *apiKey
	}

	res := c.toResolver()

	switch cmd {
	case apiTestCommand.FullCommand():
		err = apiTest(res)
	case auctionsCommand.FullCommand():
		f := skyblock.Filter{
			ItemName: *auctionsItemName,
			MinPrice: *auctionsMinPrice,
			MaxPrice: *auctionsMaxPrice,
			MaxPages: *auctionsMaxPages,
		}
		kind := sortkinds.None
		if *auctionsSorted {
			kind = sortkinds.CurrentPrice
		}
		direction := sortdirections.Up
		if *auctionsDescended {
			direction = sortdirections.Down
		}

		err = auctionsSearch(res, f, kind, direction)
	case endedCommand.FullCommand():
		f := skyblock.EndedFilter{
			Seller:   *endedSeller,
			Buyer:    *endedBuyer,
			MinPrice: *endedMinPrice,
			MaxPrice: *endedMaxPrice,
			Bin:      resolveBinFilter(*endedBin),
		}

		err = endedSearch(res, f)
	case playerCommand.FullCommand():
		err = playerAuctions(res, *playerName, *playerUUID, *playerProfile)
	case bazaarCommand.FullCommand():
		err = bazaarSearch(res, *bazaarQuery)
	}

	if err != nil {
		fmt.Printf("Could not run %s command: %s\n", cmd, err.Error())
		os.Exit(1)

		return
	}

	os.Exit(0)
}

func resolveBinFilter(in string) binfilters.BinFilter {
	switch in {
	case "bin":
		return binfilters.BinOnly
	case "auction":
		return binfilters.AuctionOnly
	}

	return binfilters.Either
}
