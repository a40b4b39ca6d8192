package domain

import "time"

// ShortLink maps a short identifier to its target URL
type ShortLink struct {
	ID        int64     `json:"id"`
	ShortID   string    `json:"short_id"`
	FullURL   string    `json:"full_url"`
	CreatedAt time.Time `json:"created_at"`
	Clicks    int64     `json:"clicks"`
}
