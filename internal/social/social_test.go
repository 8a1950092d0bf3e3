package social

import (
	"testing"

	"dailyhabit/internal/models"
)

func TestInviteCode(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{"daily", "DAI-5LY"},
		{"ab", "AB-2AB"},
		{"a", "A-1A"},
		{"DailyUser", "DAI-9ER"},
		{"bob", "BOB-3OB"},
		// Multibyte names count characters, not bytes, and never split
		// a character.
		{"héllo", "HÉL-5LO"},
		{"日記", "日記-2日記"},
	}
	for _, tt := range tests {
		if got := InviteCode(tt.username); got != tt.want {
			t.Errorf("InviteCode(%q) = %q, want %q", tt.username, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	users := []string{"alice", "bob", "daily"}

	if got, ok := Resolve("DAI-5LY", users); !ok || got != "daily" {
		t.Errorf("Resolve(DAI-5LY) = %q, %v; want daily, true", got, ok)
	}
	if _, ok := Resolve("ZZZ-9ZZ", users); ok {
		t.Error("Resolve of unknown code should report false")
	}
	// Case-sensitive comparison: lowercase input never matches.
	if _, ok := Resolve("dai-5ly", users); ok {
		t.Error("Resolve should compare case-sensitively")
	}
}

func TestResolve_CollisionFirstMatchWins(t *testing.T) {
	// Same first three characters, same length, same last two.
	users := []string{"dailxly", "daizxly"}
	code := InviteCode("dailxly")
	if code != InviteCode("daizxly") {
		t.Fatalf("test fixture is not a collision: %s vs %s", code, InviteCode("daizxly"))
	}
	got, ok := Resolve(code, users)
	if !ok || got != "dailxly" {
		t.Errorf("Resolve on collision = %q, want first candidate dailxly", got)
	}
}

func TestNewRequest(t *testing.T) {
	profile := models.UserProfile{Username: "alice", Friends: []string{"carol"}}

	req, err := NewRequest("alice", "bob", nil, profile)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	if req.Status != models.RequestPending {
		t.Errorf("new request status = %s, want pending", req.Status)
	}

	if _, err := NewRequest("alice", "alice", nil, profile); err != ErrSelfRequest {
		t.Errorf("self request error = %v, want ErrSelfRequest", err)
	}
	if _, err := NewRequest("alice", "carol", nil, profile); err != ErrAlreadyFriends {
		t.Errorf("friend request to existing friend = %v, want ErrAlreadyFriends", err)
	}
	if _, err := NewRequest("alice", "bob", []models.FriendRequest{req}, profile); err != ErrDuplicateRequest {
		t.Errorf("duplicate pending request = %v, want ErrDuplicateRequest", err)
	}
}

func TestNewRequest_AllowedAfterDecline(t *testing.T) {
	declined := models.FriendRequest{From: "alice", To: "bob", Status: models.RequestDeclined}
	profile := models.UserProfile{Username: "alice"}

	if _, err := NewRequest("alice", "bob", []models.FriendRequest{declined}, profile); err != nil {
		t.Errorf("request after decline should be allowed, got %v", err)
	}
}

func TestAccept(t *testing.T) {
	invitee := models.UserProfile{Username: "bob"}
	requests := []models.FriendRequest{
		{From: "alice", To: "bob", Status: models.RequestPending},
	}

	updated, err := Accept(&invitee, "alice", requests)
	if err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if updated[0].Status != models.RequestAccepted {
		t.Errorf("request status = %s, want accepted", updated[0].Status)
	}
	if !invitee.HasFriend("alice") {
		t.Error("invitee should have gained the inviter as a friend")
	}

	// A second accept of the now-consumed request must fail.
	if _, err := Accept(&invitee, "alice", updated); err != ErrNoPendingRequest {
		t.Errorf("re-accept error = %v, want ErrNoPendingRequest", err)
	}
}

func TestDecline(t *testing.T) {
	requests := []models.FriendRequest{
		{From: "alice", To: "bob", Status: models.RequestPending},
	}

	updated, err := Decline("bob", "alice", requests)
	if err != nil {
		t.Fatalf("Decline failed: %v", err)
	}
	if updated[0].Status != models.RequestDeclined {
		t.Errorf("request status = %s, want declined", updated[0].Status)
	}

	if _, err := Decline("bob", "alice", updated); err != ErrNoPendingRequest {
		t.Errorf("re-decline error = %v, want ErrNoPendingRequest", err)
	}
}

func TestPendingFor(t *testing.T) {
	requests := []models.FriendRequest{
		{From: "alice", To: "bob", Status: models.RequestPending},
		{From: "carol", To: "bob", Status: models.RequestDeclined},
		{From: "bob", To: "alice", Status: models.RequestPending},
	}

	pending := PendingFor("bob", requests)
	if len(pending) != 1 || pending[0].From != "alice" {
		t.Errorf("PendingFor(bob) = %v, want single pending request from alice", pending)
	}
}
