package dto

import "github.com/compcleared/compcleared-api/internal/domain/entity"

// Stats agregados del dashboard: tres agregaciones independientes combinadas.
type Stats struct {
	TotalIncidents int                        `json:"total_incidents"`
	ByType         []entity.ViolenceTypeCount `json:"by_type"`
	Recent30Days   int                        `json:"recent_30_days"`
}

// StatsResponse salida de /api/stats.
type StatsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}
