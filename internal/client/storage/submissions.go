package storage

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/cforge/cforge/internal/client/models"
	"github.com/cforge/cforge/internal/client/repositories/metadata"
	"github.com/cforge/cforge/internal/logging"
)

// submissionsKey is the fixed metadata key the whole collection lives under.
const submissionsKey = "submissions"

// blobVersion tags the persisted format so a future layout change can
// migrate instead of discarding.
const blobVersion = 1

type submissionsBlob struct {
	Version     int                 `json:"version"`
	Submissions []models.Submission `json:"submissions"`
}

// SubmissionStore is the append-only list of locally recorded submissions.
// It is the sole owner and sole writer of its collection; every append
// persists the whole collection immediately. Persistence failures are
// logged and swallowed: losing a locally simulated record is non-critical
// and must never surface to the caller.
type SubmissionStore struct {
	repo metadata.Repository
	log  logging.Logger

	mu    sync.Mutex
	items []models.Submission
}

// NewSubmissionStore loads the persisted collection. A corrupt or
// unreadable blob is treated as an empty store, never a fatal error.
func NewSubmissionStore(ctx context.Context, repo metadata.Repository, log logging.Logger) *SubmissionStore {
	s := &SubmissionStore{repo: repo, log: log}

	data, err := repo.Get(ctx, submissionsKey)
	if err != nil {
		log.Warn(ctx, "failed to load submissions, starting empty", "error", err)
		return s
	}
	if data == nil {
		return s
	}

	var blob submissionsBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		log.Warn(ctx, "corrupt submissions blob, starting empty", "error", err)
		return s
	}
	s.items = blob.Submissions
	return s
}

// Append records a submission and persists the full collection.
func (s *SubmissionStore) Append(ctx context.Context, sub models.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, sub)

	data, err := json.Marshal(submissionsBlob{Version: blobVersion, Submissions: s.items})
	if err != nil {
		s.log.Error(ctx, "failed to serialize submissions", "error", err)
		return
	}
	if err := s.repo.Set(ctx, submissionsKey, data); err != nil {
		s.log.Error(ctx, "failed to persist submissions", "error", err)
	}
}

// ForProblem returns the submissions recorded for a problem, newest first.
func (s *SubmissionStore) ForProblem(problemID string) []models.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Submission
	for _, sub := range s.items {
		if sub.ProblemID == problemID {
			out = append(out, sub)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// All returns a copy of the whole collection in insertion order.
func (s *SubmissionStore) All() []models.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Submission, len(s.items))
	copy(out, s.items)
	return out
}
