package domain

// Candidate is a normalized record carrying everything needed to rank and
// render one entry. Immutable once constructed.
type Candidate struct {
	Score     int64  `json:"score"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Timestamp int64  `json:"timestamp"` // seconds since the Unix epoch, UTC
}

// Compare defines the preference order over candidates; negative means a
// ranks better than b. Higher score first, then earlier submission, then
// byte-lexicographic title. Candidates equal on all three keys compare as
// 0 and may appear in either relative order.
func Compare(a, b Candidate) int {
	switch {
	case a.Score != b.Score:
		if a.Score > b.Score {
			return -1
		}
		return 1
	case a.Timestamp != b.Timestamp:
		if a.Timestamp < b.Timestamp {
			return -1
		}
		return 1
	case a.Title != b.Title:
		if a.Title < b.Title {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Better reports whether a ranks strictly better than b.
func Better(a, b Candidate) bool {
	return Compare(a, b) < 0
}

// Equivalent reports a full ranking tie (author is not a ranking key).
func Equivalent(a, b Candidate) bool {
	return Compare(a, b) == 0
}
