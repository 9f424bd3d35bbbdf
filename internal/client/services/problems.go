package services

import (
	"context"

	"github.com/cforge/cforge/internal/client/api"
	"github.com/cforge/cforge/internal/client/models"
)

// ProblemService serves the problem list and detail screens.
type ProblemService interface {
	All(ctx context.Context) ([]models.Problem, error)
	Statement(ctx context.Context, contestID int, index string) (string, error)
}

type problemService struct {
	client api.Client
}

func NewProblemService(client api.Client) ProblemService {
	return &problemService{client: client}
}

func (s *problemService) All(ctx context.Context) ([]models.Problem, error) {
	return s.client.Problems(ctx)
}

func (s *problemService) Statement(ctx context.Context, contestID int, index string) (string, error) {
	return s.client.ProblemStatement(ctx, contestID, index)
}
