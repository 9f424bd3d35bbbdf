package models

// UserProfile is a user record from user.info. The handle is the only field
// the platform guarantees; everything else may be absent for fresh accounts.
type UserProfile struct {
	Handle       string
	Rank         string
	Rating       *int
	MaxRating    *int
	Contribution *int
}

// Profile is the aggregated view a profile screen renders: the user.info
// record plus a solved-problem count derived from submission history.
// SolvedCount is nil when the history fetch failed and the count is unknown.
type Profile struct {
	Info        UserProfile
	SolvedCount *int
}
