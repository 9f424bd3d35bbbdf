package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/cforge/cforge/internal/client/models"
	"github.com/cforge/cforge/internal/client/storage"
	"github.com/google/uuid"
)

// SubmissionService records simulated submissions and serves the
// per-problem submission history of the detail screen. There is no real
// judging: the verdict is drawn at random, as the submit flow is a mock.
type SubmissionService interface {
	Submit(ctx context.Context, problem models.Problem, language string) models.Submission
	History(problemID string) []models.Submission
}

type submissionService struct {
	store *storage.SubmissionStore
	now   func() time.Time
	randn func(n int) int
}

func NewSubmissionService(store *storage.SubmissionStore) SubmissionService {
	return &submissionService{store: store, now: time.Now, randn: rand.Intn}
}

var simulatedVerdicts = []models.Verdict{
	models.VerdictAccepted,
	models.VerdictWrongAnswer,
	models.VerdictTimeLimitExceeded,
	models.VerdictRuntimeError,
	models.VerdictCompilationError,
	models.VerdictMemoryLimitExceeded,
}

func (s *submissionService) Submit(ctx context.Context, problem models.Problem, language string) models.Submission {
	verdict := simulatedVerdicts[s.randn(len(simulatedVerdicts))]
	testCount := 10 + s.randn(51)

	passed := testCount
	if verdict != models.VerdictAccepted {
		passed = s.randn(testCount)
	}

	now := s.now()
	sub := models.Submission{
		ID:              uuid.NewString(),
		ProblemID:       problem.ID(),
		Verdict:         verdict,
		TimeLabel:       now.Format("15:04, Jan 2"),
		PassedTestCount: passed,
		TestCount:       testCount,
		Language:        language,
		CreatedAt:       now,
	}
	s.store.Append(ctx, sub)
	return sub
}

func (s *submissionService) History(problemID string) []models.Submission {
	return s.store.ForProblem(problemID)
}
