package interfaces

import (
	"context"

	domaintypes "artpiece/internal/domain/types"
)

// Authenticator is the platform's local authentication capability.
type Authenticator interface {
	HasHardware(ctx context.Context) (bool, error)
	IsEnrolled(ctx context.Context) (bool, error)
	// Authenticate presents one prompt and blocks until the user answers,
	// cancels or the attempt times out.
	Authenticate(ctx context.Context, prompt string) (domaintypes.AuthChallengeResult, error)
}

// CatalogClient reads the remote art catalog.
type CatalogClient interface {
	FetchItems(ctx context.Context) ([]domaintypes.CatalogItem, error)
}

// Locator reads the current device position.
type Locator interface {
	CurrentPosition(ctx context.Context) (domaintypes.Position, error)
}

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// Notifier delivers user-facing notifications to the presentation layer.
type Notifier interface {
	Notify(ctx context.Context, n domaintypes.Notification)
}
