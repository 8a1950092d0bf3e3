package models

// UserProfile is the per-user state outside the habit/todo collections.
// Points only ever increase; completions award them and un-completing
// does not claw them back.
type UserProfile struct {
	Username string   `json:"username"`
	Avatar   string   `json:"avatar"`
	Points   int      `json:"points"`
	Friends  []string `json:"friends,omitempty"`
}

// DefaultProfile returns the profile a fresh registration starts with.
func DefaultProfile(username string) UserProfile {
	return UserProfile{
		Username: username,
		Avatar:   "👤",
	}
}

// HasFriend reports whether name is already in the friend list.
func (p UserProfile) HasFriend(name string) bool {
	for _, f := range p.Friends {
		if f == name {
			return true
		}
	}
	return false
}

// DailyNote is a free-form note attached to a single date. At most one
// note exists per date; saving empty text removes it.
type DailyNote struct {
	Date string `json:"date"` // YYYY-MM-DD
	Text string `json:"text"`
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// FriendRequest records one invitation between two users. Transitions are
// one-way: pending to accepted or pending to declined. A decline does not
// block a later fresh request.
type FriendRequest struct {
	From      string        `json:"from"`
	To        string        `json:"to"`
	Status    RequestStatus `json:"status"`
	Timestamp int64         `json:"timestamp"` // epoch milliseconds
}
