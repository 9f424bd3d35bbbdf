package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cforge/cforge/internal/client/models"
	"github.com/cforge/cforge/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logging.NewDefault("error")
	opts = append([]Option{WithRetry(0, time.Millisecond)}, opts...)
	return NewHTTPClient(srv.URL, log, opts...), srv
}

func respond(t *testing.T, body string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func TestContestList(t *testing.T) {
	body := `{"status":"OK","result":[
		{"id":1999,"name":"Codeforces Round 999 (Rated)","type":"CF","phase":"BEFORE","durationSeconds":7200,"startTimeSeconds":1700000000},
		{"id":1998,"name":"Old Round","type":"CF","phase":"FINISHED","durationSeconds":7200}
	]}`
	c, _ := newTestClient(t, respond(t, body))

	contests, err := c.ContestList(context.Background())
	require.NoError(t, err)
	require.Len(t, contests, 2)

	assert.Equal(t, 1999, contests[0].ID)
	assert.Equal(t, models.PhaseBefore, contests[0].Phase)
	assert.True(t, contests[0].IsRated())
	require.NotNil(t, contests[0].StartTimeSeconds)
	assert.Nil(t, contests[1].StartTimeSeconds)
}

func TestEnvelopeStatusFailed(t *testing.T) {
	// status != "OK" must always produce an APIError, never a payload
	c, _ := newTestClient(t, respond(t, `{"status":"FAILED","comment":"contest.list: limit exceeded"}`))

	_, err := c.ContestList(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "contest.list: limit exceeded", apiErr.Comment)
	assert.Equal(t, "contest.list: limit exceeded", UserMessage(err))
}

func TestBadResponseStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.ContestList(context.Background())
	var badResp *BadResponseError
	require.ErrorAs(t, err, &badResp)
	assert.Equal(t, http.StatusBadGateway, badResp.StatusCode)
}

func TestEmptyBody(t *testing.T) {
	c, _ := newTestClient(t, respond(t, ""))

	_, err := c.ContestList(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestMalformedEnvelope(t *testing.T) {
	c, _ := newTestClient(t, respond(t, `{"status":"OK","result":{"not":"a list"}}`))

	_, err := c.ContestList(context.Background())
	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestInvalidBaseURL(t *testing.T) {
	log := logging.NewDefault("error")
	c := NewHTTPClient("://nonsense", log)

	_, err := c.ContestList(context.Background())
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestProblemsCorrelatesStatistics(t *testing.T) {
	body := `{"status":"OK","result":{
		"problems":[
			{"contestId":4,"index":"A","name":"Watermelon","rating":800,"tags":["math"]},
			{"contestId":1,"index":"B","name":"Spreadsheets","tags":["implementation"]}
		],
		"problemStatistics":[
			{"contestId":4,"index":"A","solvedCount":25431},
			{"contestId":1,"index":"B","solvedCount":18452}
		]
	}}`
	c, _ := newTestClient(t, respond(t, body))

	problems, err := c.Problems(context.Background())
	require.NoError(t, err)
	require.Len(t, problems, 2)

	assert.Equal(t, "4A", problems[0].ID())
	assert.Equal(t, 25431, problems[0].SolvedCount)
	require.NotNil(t, problems[0].Rating)
	assert.Equal(t, 800, *problems[0].Rating)

	assert.Equal(t, "1B", problems[1].ID())
	assert.Nil(t, problems[1].Rating)
}

func TestProblemsDropsMalformedRecords(t *testing.T) {
	body := `{"status":"OK","result":{
		"problems":[
			{"contestId":4,"index":"A","name":"Watermelon"},
			{"index":"B","name":"No Contest"},
			{"contestId":7,"name":"No Index"}
		],
		"problemStatistics":[]
	}}`

	t.Run("lenient", func(t *testing.T) {
		c, _ := newTestClient(t, respond(t, body))
		problems, err := c.Problems(context.Background())
		require.NoError(t, err)
		require.Len(t, problems, 1)
		assert.Equal(t, "4A", problems[0].ID())
	})

	t.Run("strict", func(t *testing.T) {
		c, _ := newTestClient(t, respond(t, body), WithStrictDecode(true))
		_, err := c.Problems(context.Background())
		var decErr *DecodeError
		assert.ErrorAs(t, err, &decErr)
	})
}

func TestProblemStatement(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		c, _ := newTestClient(t, respond(t,
			`{"status":"OK","result":{"problem":{"name":"Watermelon","description":"<p>Split it.</p>"}}}`))
		s, err := c.ProblemStatement(context.Background(), 4, "A")
		require.NoError(t, err)
		assert.Equal(t, "<p>Split it.</p>", s)
	})

	t.Run("absent yields sentinel, not an error", func(t *testing.T) {
		c, _ := newTestClient(t, respond(t,
			`{"status":"OK","result":{"problem":{"name":"Watermelon"}}}`))
		s, err := c.ProblemStatement(context.Background(), 4, "A")
		require.NoError(t, err)
		assert.Equal(t, StatementUnavailable, s)
	})
}

func TestUserInfo(t *testing.T) {
	t.Run("first element wins", func(t *testing.T) {
		c, _ := newTestClient(t, respond(t,
			`{"status":"OK","result":[{"handle":"tourist","rank":"legendary grandmaster","rating":3828,"maxRating":3979,"contribution":214}]}`))
		p, err := c.UserInfo(context.Background(), "tourist")
		require.NoError(t, err)
		assert.Equal(t, "tourist", p.Handle)
		require.NotNil(t, p.Rating)
		assert.Equal(t, 3828, *p.Rating)
	})

	t.Run("empty result", func(t *testing.T) {
		c, _ := newTestClient(t, respond(t, `{"status":"OK","result":[]}`))
		_, err := c.UserInfo(context.Background(), "nobody")
		assert.ErrorIs(t, err, ErrHandleNotFound)
	})
}

func TestUserStatusTolerantVerdicts(t *testing.T) {
	body := `{"status":"OK","result":[
		{"problem":{"contestId":4,"index":"A","name":"Watermelon"},"verdict":"OK"},
		{"problem":{"contestId":4,"index":"A","name":"Watermelon"},"verdict":"TESTING"},
		{"problem":{"contestId":1,"index":"B","name":"Spreadsheets"},"verdict":"WRONG_ANSWER"}
	]}`
	c, _ := newTestClient(t, respond(t, body))

	entries, err := c.UserStatus(context.Background(), "tourist")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, models.VerdictAccepted, entries[0].Verdict)
	assert.Equal(t, models.VerdictUnknown, entries[1].Verdict)
	assert.Equal(t, models.VerdictWrongAnswer, entries[2].Verdict)
}

func TestRetryOnTransportFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			// drop the connection so the client sees a transport error
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","result":[]}`))
	}))
	t.Cleanup(srv.Close)

	log := logging.NewDefault("error")
	c := NewHTTPClient(srv.URL, log, WithRetry(3, time.Millisecond))

	contests, err := c.ContestList(context.Background())
	require.NoError(t, err)
	assert.Empty(t, contests)
	assert.Equal(t, int32(3), calls.Load())
}

func TestNoRetryOnAPIError(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"status":"FAILED","comment":"nope"}`))
	})
	c, _ := newTestClient(t, handler, WithRetry(5, time.Millisecond))

	_, err := c.ContestList(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUserMessageFallback(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "Network error", UserMessage(&NetworkError{Err: errors.New("refused")}))
	assert.Equal(t, "Bad server response", UserMessage(&BadResponseError{StatusCode: 502}))
	assert.Equal(t, "Invalid handle", UserMessage(ErrHandleNotFound))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
}
