package domain

// ScanRewardCents is accrued on every recorded scan ($0.01).
const ScanRewardCents int64 = 1

// PayoutThresholdCents is the inclusive minimum a user must accrue across all
// their stickers to be selected for a monthly payout ($5.00).
const PayoutThresholdCents int64 = 500

const (
	tier2Scans = 500
	tier3Scans = 1000
)

// UserStats is the dashboard aggregate over a user's active stickers.
type UserStats struct {
	TotalScans         int64
	TotalEarningsCents int64
	ActiveStickers     int
	CurrentTier        int
}

// TierForScans maps a lifetime scan count to a reward tier. Thresholds are
// evaluated highest first; there is no hysteresis, the tier is recomputed
// fresh on every call.
func TierForScans(totalScans int64) int {
	switch {
	case totalScans >= tier3Scans:
		return 3
	case totalScans >= tier2Scans:
		return 2
	default:
		return 1
	}
}

// MaxStickersForTier is the claim limit implied by a tier: 1->1, 2->2, 3->3.
func MaxStickersForTier(tier int) int {
	return tier
}

// ComputeStats aggregates a user's active stickers. Pure; callers pass the
// active set only, inactive stickers are excluded from dashboard stats.
func ComputeStats(active []QrCode) UserStats {
	stats := UserStats{ActiveStickers: len(active)}
	for _, qr := range active {
		stats.TotalScans += qr.TotalScans
		stats.TotalEarningsCents += qr.TotalEarningsCents
	}
	stats.CurrentTier = TierForScans(stats.TotalScans)
	return stats
}
