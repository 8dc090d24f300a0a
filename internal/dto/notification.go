package dto

import "time"

type NotificationPreferenceResponseDTO struct {
	LastDismissedAt *time.Time `json:"lastDismissedAt,omitempty"`
}
