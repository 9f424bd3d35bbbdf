package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cforge/cforge/internal/client/models"
	"github.com/cforge/cforge/internal/logging"
)

const (
	// DefaultBaseURL is the public API root.
	DefaultBaseURL = "https://codeforces.com/api"

	// DefaultTimeout is the unified per-call timeout.
	DefaultTimeout = 15 * time.Second

	// DefaultRetryAttempts bounds retries of transport failures.
	DefaultRetryAttempts = 3

	// DefaultRetryDelay is the pause between attempts, honoring the
	// platform's rate-limit guidance.
	DefaultRetryDelay = 200 * time.Millisecond

	// StatementUnavailable is returned when a problem has no statement body.
	StatementUnavailable = "problem statement not available"

	// historyPageSize caps how much submission history one fetch pulls.
	historyPageSize = 10000
)

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL       string
	httpClient    *http.Client
	log           logging.Logger
	retryAttempts uint64
	retryDelay    time.Duration
	strictDecode  bool
	signer        *signer
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.httpClient.Timeout = d }
}

// WithRetry sets how many times transport failures are retried and the
// constant delay between attempts.
func WithRetry(attempts uint64, delay time.Duration) Option {
	return func(c *HTTPClient) {
		c.retryAttempts = attempts
		if delay > 0 {
			c.retryDelay = delay
		}
	}
}

// WithStrictDecode makes the problem-set decoder fail on malformed records
// instead of dropping them.
func WithStrictDecode(strict bool) Option {
	return func(c *HTTPClient) { c.strictDecode = strict }
}

// WithCredentials enables request signing with the given key pair.
func WithCredentials(creds Credentials) Option {
	return func(c *HTTPClient) { c.signer = newSigner(creds) }
}

// WithHTTPClient substitutes the underlying *http.Client (test seam).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// NewHTTPClient builds a client for the given API root. An empty baseURL
// selects the public endpoint.
func NewHTTPClient(baseURL string, log logging.Logger, opts ...Option) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &HTTPClient{
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: DefaultTimeout},
		log:           log,
		retryAttempts: DefaultRetryAttempts,
		retryDelay:    DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetCredentials enables request signing after construction. Passing an
// empty key pair disables it.
func (c *HTTPClient) SetCredentials(creds Credentials) {
	if creds.Key == "" && creds.Secret == "" {
		c.signer = nil
		return
	}
	c.signer = newSigner(creds)
}

// endpointURL assembles the full URL for a method, signing the parameters
// when credentials are configured.
func (c *HTTPClient) endpointURL(method string, params url.Values) (string, error) {
	if params == nil {
		params = url.Values{}
	}
	if c.signer != nil {
		signed, err := c.signer.sign(method, params)
		if err != nil {
			return "", fmt.Errorf("signing request: %w", err)
		}
		params = signed
	}
	u := c.baseURL + "/" + method
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u, nil
}

// contestDTO mirrors one contest.list entry.
type contestDTO struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Phase            string `json:"phase"`
	DurationSeconds  int64  `json:"durationSeconds"`
	StartTimeSeconds *int64 `json:"startTimeSeconds"`
}

func (d contestDTO) toContest() models.Contest {
	return models.Contest{
		ID:               d.ID,
		Name:             d.Name,
		Type:             d.Type,
		Phase:            models.ContestPhase(d.Phase),
		DurationSeconds:  d.DurationSeconds,
		StartTimeSeconds: d.StartTimeSeconds,
	}
}

func (c *HTTPClient) ContestList(ctx context.Context) ([]models.Contest, error) {
	u, err := c.endpointURL("contest.list", nil)
	if err != nil {
		return nil, err
	}

	dtos, err := fetchJSON[[]contestDTO](ctx, c, u)
	if err != nil {
		return nil, err
	}

	contests := make([]models.Contest, 0, len(*dtos))
	for _, d := range *dtos {
		contests = append(contests, d.toContest())
	}
	return contests, nil
}

// problemsResultDTO mirrors the problemset.problems result: two parallel
// sequences correlated by (contestId, index).
type problemsResultDTO struct {
	Problems          []problemDTO `json:"problems"`
	ProblemStatistics []statDTO    `json:"problemStatistics"`
}

// The upstream API is known to contain partial records, so identity fields
// are pointers and incomplete entries are dropped rather than failing.
type problemDTO struct {
	ContestID *int     `json:"contestId"`
	Index     *string  `json:"index"`
	Name      *string  `json:"name"`
	Rating    *int     `json:"rating"`
	Tags      []string `json:"tags"`
}

type statDTO struct {
	ContestID   *int    `json:"contestId"`
	Index       *string `json:"index"`
	SolvedCount int     `json:"solvedCount"`
}

func (c *HTTPClient) Problems(ctx context.Context) ([]models.Problem, error) {
	u, err := c.endpointURL("problemset.problems", nil)
	if err != nil {
		return nil, err
	}

	res, err := fetchJSON[problemsResultDTO](ctx, c, u)
	if err != nil {
		return nil, err
	}

	solved := make(map[string]int, len(res.ProblemStatistics))
	for _, s := range res.ProblemStatistics {
		if s.ContestID == nil || s.Index == nil {
			continue
		}
		solved[strconv.Itoa(*s.ContestID)+*s.Index] = s.SolvedCount
	}

	problems := make([]models.Problem, 0, len(res.Problems))
	dropped := 0
	for _, d := range res.Problems {
		if d.ContestID == nil || d.Index == nil || d.Name == nil {
			dropped++
			continue
		}
		p := models.Problem{
			ContestID:   *d.ContestID,
			Index:       *d.Index,
			Title:       *d.Name,
			Rating:      d.Rating,
			Tags:        d.Tags,
			SolvedCount: solved[strconv.Itoa(*d.ContestID)+*d.Index],
		}
		problems = append(problems, p)
	}

	if dropped > 0 {
		if c.strictDecode {
			return nil, &DecodeError{Err: fmt.Errorf("%d malformed problem records", dropped)}
		}
		c.log.Warn(ctx, "dropped malformed problem records", "count", dropped)
	}
	return problems, nil
}

// statementResultDTO mirrors the problemset.problem result.
type statementResultDTO struct {
	Problem struct {
		Description *string `json:"description"`
	} `json:"problem"`
}

func (c *HTTPClient) ProblemStatement(ctx context.Context, contestID int, index string) (string, error) {
	params := url.Values{}
	params.Set("contestId", strconv.Itoa(contestID))
	params.Set("index", index)

	u, err := c.endpointURL("problemset.problem", params)
	if err != nil {
		return "", err
	}

	res, err := fetchJSON[statementResultDTO](ctx, c, u)
	if err != nil {
		return "", err
	}
	if res.Problem.Description == nil {
		return StatementUnavailable, nil
	}
	return *res.Problem.Description, nil
}

// userDTO mirrors one user.info entry.
type userDTO struct {
	Handle       string `json:"handle"`
	Rank         string `json:"rank"`
	Rating       *int   `json:"rating"`
	MaxRating    *int   `json:"maxRating"`
	Contribution *int   `json:"contribution"`
}

func (d userDTO) toProfile() models.UserProfile {
	return models.UserProfile{
		Handle:       d.Handle,
		Rank:         d.Rank,
		Rating:       d.Rating,
		MaxRating:    d.MaxRating,
		Contribution: d.Contribution,
	}
}

func (c *HTTPClient) UserInfo(ctx context.Context, handle string) (*models.UserProfile, error) {
	params := url.Values{}
	params.Set("handles", handle)

	u, err := c.endpointURL("user.info", params)
	if err != nil {
		return nil, err
	}

	dtos, err := fetchJSON[[]userDTO](ctx, c, u)
	if err != nil {
		return nil, err
	}
	if len(*dtos) == 0 {
		return nil, ErrHandleNotFound
	}

	// first element is the profile of interest when querying a single handle
	profile := (*dtos)[0].toProfile()
	return &profile, nil
}

func (c *HTTPClient) UserStatus(ctx context.Context, handle string) ([]models.HistoryEntry, error) {
	params := url.Values{}
	params.Set("handle", handle)
	params.Set("from", "1")
	params.Set("count", strconv.Itoa(historyPageSize))

	u, err := c.endpointURL("user.status", params)
	if err != nil {
		return nil, err
	}

	entries, err := fetchJSON[[]models.HistoryEntry](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}
