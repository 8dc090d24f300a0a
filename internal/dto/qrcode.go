package dto

import "time"

type ClaimRequestDTO struct {
	ClaimCode            string `json:"claimCode" validate:"required"`
	PlacementDescription string `json:"placementDescription" validate:"max=500"`
}

type QrCodeResponseDTO struct {
	ID                   int       `json:"id"`
	ClaimCode            string    `json:"claimCode" example:"SH-T1-ABC123"`
	PlacementDescription string    `json:"placementDescription"`
	TotalScans           int64     `json:"totalScans"`
	TotalEarningsCents   int64     `json:"totalEarningsCents"`
	IsActive             bool      `json:"isActive"`
	ClaimedAt            time.Time `json:"claimedAt"`
}

type StatsResponseDTO struct {
	TotalScans         int64 `json:"totalScans" example:"512"`
	TotalEarningsCents int64 `json:"totalEarningsCents" example:"512"`
	ActiveStickers     int   `json:"activeStickers" example:"2"`
	CurrentTier        int   `json:"currentTier" example:"2"`
}
