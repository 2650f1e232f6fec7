package contract

import (
	"context"
)

// PlatformStats is the admin dashboard aggregate.
type PlatformStats struct {
	TotalUsers       int `json:"totalUsers"`
	TotalHomestays   int `json:"totalHomestays"`
	TotalBookings    int `json:"totalBookings"`
	TotalAttractions int `json:"totalAttractions"`
}

// IStatsUsecase aggregates platform-wide counts for the admin view.
type IStatsUsecase interface {
	Overview(ctx context.Context) PlatformStats
}
