package main

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sotah-inc/skyblock/app/hypixel"
	"github.com/sotah-inc/skyblock/app/util"
)

func newConfigFromFilepath(relativePath string) (config, error) {
	log.WithField("path", relativePath).Info("Reading config")

	body, err := util.ReadFile(relativePath)
	if err != nil {
		return config{}, err
	}

	return newConfig(body)
}

func newConfig(body []byte) (config, error) {
	c := &config{}
	if err := json.Unmarshal(body, &c); err != nil {
		return config{}, err
	}

	return *c, nil
}

type config struct {
	APIKey          string `json:"api_key"`
	HypixelEndpoint string `json:"hypixel_endpoint"`
	MojangEndpoint  string `json:"mojang_endpoint"`
	TimeoutSeconds  int    `json:"timeout_seconds"`
}

func (c config) toResolver() hypixel.Resolver {
	hypixelHost := c.HypixelEndpoint
	if hypixelHost == "" {
		hypixelHost = hypixel.DefaultHypixelHost
	}
	mojangHost := c.MojangEndpoint
	if mojangHost == "" {
		mojangHost = hypixel.DefaultMojangHost
	}

	res := hypixel.NewResolverForHosts(c.APIKey, hypixelHost, mojangHost)
	if c.TimeoutSeconds > 0 {
		res.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}

	return res
}
