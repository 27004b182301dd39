package thresholds

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/duelcore/rankhound/internal/services/thresholds Service

import (
	"context"

	"github.com/duelcore/rankhound/internal/models"
)

// Service is the process-wide cache of tiering and eligibility parameters.
// Readers always get a complete config: before the first successful
// refresh they see hardcoded safe defaults, and a failed refresh keeps the
// previous value.
type Service interface {
	// Current returns the cached threshold config by value
	Current() models.ThresholdConfig

	// Refresh fetches a new config from the backend and replaces the
	// cached value wholesale. On failure the cached value is untouched.
	Refresh(ctx context.Context) error
}
