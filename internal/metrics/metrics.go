package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScansRecorded counts accepted scan events, including repeats from the
	// same IP; every accepted POST increments it.
	ScansRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scanhive_scans_recorded_total",
		Help: "Number of scan events recorded.",
	})

	// ScansRejected counts scans dropped because the sticker was unknown or
	// inactive.
	ScansRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scanhive_scans_rejected_total",
		Help: "Number of scan events rejected for unknown or inactive stickers.",
	})

	// PayoutsCreated counts monthly payout rows inserted by the selector.
	PayoutsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scanhive_payouts_created_total",
		Help: "Number of monthly payout records created.",
	})
)
