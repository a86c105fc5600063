package relay

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate makes at most one upstream call. Returned errors are the ones declared in errors.go.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
