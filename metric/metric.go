package metric

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sotah-inc/skyblock/app/logging"
)

// Name - typehint for these enums
type Name string

/*
Names - names of metrics
*/
const (
	HypixelAPIIngress Name = "hypixel_api_ingress"
)

func report(name Name, fields logrus.Fields, message string) {
	fields["metric"] = name

	logging.WithFields(fields).Debug(message)
}

// HypixelAPIIngressMetrics - measurements of one api download
type HypixelAPIIngressMetrics struct {
	ByteCount          int
	ConnectionDuration time.Duration
	RequestDuration    time.Duration
}

// ReportHypixelAPIIngress - metric report func for logging byte ingress and request durations
func ReportHypixelAPIIngress(message string, metrics HypixelAPIIngressMetrics) {
	report(HypixelAPIIngress, logrus.Fields{
		"byte_count":          metrics.ByteCount,
		"connection_duration": int64(metrics.ConnectionDuration / time.Millisecond),
		"request_duration":    int64(metrics.RequestDuration / time.Millisecond),
	}, message)
}
