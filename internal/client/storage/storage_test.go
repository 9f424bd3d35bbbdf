package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cforge/cforge/internal/client/models"
	"github.com/cforge/cforge/internal/client/repositories/metadata"
	"github.com/cforge/cforge/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testLogger() logging.Logger {
	return logging.NewDefault("error")
}

func makeSubmission(problemID string, verdict models.Verdict, createdAt time.Time) models.Submission {
	return models.Submission{
		ID:              uuid.NewString(),
		ProblemID:       problemID,
		Verdict:         verdict,
		TimeLabel:       createdAt.Format(time.Kitchen),
		PassedTestCount: 12,
		TestCount:       50,
		Language:        "C++",
		CreatedAt:       createdAt,
	}
}

func TestSubmissionRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := metadata.NewSQLiteRepository(setupDB(t))

	store := NewSubmissionStore(ctx, repo, testLogger())

	base := time.Date(2025, 3, 30, 12, 0, 0, 0, time.UTC)
	var want []models.Submission
	for i := 0; i < 5; i++ {
		sub := makeSubmission("4A", models.VerdictWrongAnswer, base.Add(time.Duration(i)*time.Minute))
		store.Append(ctx, sub)
		want = append(want, sub)
	}

	// reload from persistence: same submissions, same relative order
	reloaded := NewSubmissionStore(ctx, repo, testLogger())
	assert.Equal(t, want, reloaded.All())
}

func TestForProblemNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := metadata.NewSQLiteRepository(setupDB(t))
	store := NewSubmissionStore(ctx, repo, testLogger())

	base := time.Date(2025, 3, 30, 12, 0, 0, 0, time.UTC)
	oldest := makeSubmission("4A", models.VerdictWrongAnswer, base)
	other := makeSubmission("1B", models.VerdictAccepted, base.Add(time.Minute))
	newest := makeSubmission("4A", models.VerdictAccepted, base.Add(2*time.Minute))

	store.Append(ctx, oldest)
	store.Append(ctx, other)
	store.Append(ctx, newest)

	got := store.ForProblem("4A")
	require.Len(t, got, 2)
	assert.Equal(t, newest.ID, got[0].ID)
	assert.Equal(t, oldest.ID, got[1].ID)

	assert.Empty(t, store.ForProblem("999Z"))
}

func TestCorruptBlobLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := metadata.NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, "submissions", []byte("{not json")))

	store := NewSubmissionStore(ctx, repo, testLogger())
	assert.Empty(t, store.All())

	// the store recovers: a fresh append persists over the corrupt blob
	store.Append(ctx, makeSubmission("4A", models.VerdictAccepted, time.Now()))
	reloaded := NewSubmissionStore(ctx, repo, testLogger())
	assert.Len(t, reloaded.All(), 1)
}

type failingRepo struct {
	metadata.Repository
}

func (f *failingRepo) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}

func TestAppendSwallowsPersistenceErrors(t *testing.T) {
	ctx := context.Background()
	repo := &failingRepo{Repository: metadata.NewSQLiteRepository(setupDB(t))}
	store := NewSubmissionStore(ctx, repo, testLogger())

	// must not panic or surface the error; the in-memory list still grows
	store.Append(ctx, makeSubmission("4A", models.VerdictAccepted, time.Now()))
	assert.Len(t, store.All(), 1)
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	repo := metadata.NewSQLiteRepository(setupDB(t))
	sessions := NewSessionStore(repo)

	sess, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)

	require.NoError(t, sessions.Save(ctx, Session{Handle: "tourist"}))

	sess, err = sessions.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "tourist", sess.Handle)
}
