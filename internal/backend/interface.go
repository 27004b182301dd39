package backend

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/duelcore/rankhound/internal/backend Client

import (
	"context"

	"github.com/duelcore/rankhound/internal/models"
)

// Client is the rating backend API surface. The backend owns the rating
// math; the bot only reads configuration and forwards privileged admin
// writes, treating responses as opaque success or failure plus a message.
type Client interface {
	// GetThresholds fetches the current tiering and eligibility parameters
	GetThresholds(ctx context.Context) (*models.ThresholdConfig, error)

	// ResetAllRatings resets every player's rating to the floor
	ResetAllRatings(ctx context.Context) (*AdminActionOutput, error)

	// ZeroPlayerRating zeroes one player's rating
	ZeroPlayerRating(ctx context.Context, input *ZeroPlayerRatingInput) (*AdminActionOutput, error)

	// SetPlayerRating sets one player's rating and games count
	SetPlayerRating(ctx context.Context, input *SetPlayerRatingInput) (*AdminActionOutput, error)
}
