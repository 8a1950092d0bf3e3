package social

import (
	"fmt"
	"time"

	"dailyhabit/internal/models"
)

var (
	// ErrSelfRequest rejects inviting yourself.
	ErrSelfRequest = fmt.Errorf("cannot send a friend request to yourself")
	// ErrDuplicateRequest rejects re-inviting while a request is pending.
	ErrDuplicateRequest = fmt.Errorf("a pending request to that user already exists")
	// ErrAlreadyFriends rejects inviting an existing friend.
	ErrAlreadyFriends = fmt.Errorf("already friends with that user")
	// ErrNoPendingRequest reports accept/decline without a matching
	// pending request.
	ErrNoPendingRequest = fmt.Errorf("no pending request from that user")
)

// NewRequest creates a pending friend request from one user to another,
// validating against the current request and friend state. A previously
// declined request does not block a fresh one.
func NewRequest(from, to string, requests []models.FriendRequest, fromProfile models.UserProfile) (models.FriendRequest, error) {
	if from == to {
		return models.FriendRequest{}, ErrSelfRequest
	}
	if fromProfile.HasFriend(to) {
		return models.FriendRequest{}, ErrAlreadyFriends
	}
	for _, r := range requests {
		if r.From == from && r.To == to && r.Status == models.RequestPending {
			return models.FriendRequest{}, ErrDuplicateRequest
		}
	}
	return models.FriendRequest{
		From:      from,
		To:        to,
		Status:    models.RequestPending,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// PendingFor filters requests down to the pending invitations addressed
// to the given user.
func PendingFor(user string, requests []models.FriendRequest) []models.FriendRequest {
	var pending []models.FriendRequest
	for _, r := range requests {
		if r.To == user && r.Status == models.RequestPending {
			pending = append(pending, r)
		}
	}
	return pending
}

// Accept transitions the pending request from the inviter to accepted
// and adds the inviter to the invitee's friend list. The friendship is
// recorded on the invitee's side only; the reverse direction takes its
// own request.
func Accept(invitee *models.UserProfile, from string, requests []models.FriendRequest) ([]models.FriendRequest, error) {
	idx := findPending(from, invitee.Username, requests)
	if idx < 0 {
		return requests, ErrNoPendingRequest
	}
	requests[idx].Status = models.RequestAccepted
	if !invitee.HasFriend(from) {
		invitee.Friends = append(invitee.Friends, from)
	}
	return requests, nil
}

// Decline transitions the pending request from the inviter to declined.
// The inviter may send a new request afterwards.
func Decline(invitee string, from string, requests []models.FriendRequest) ([]models.FriendRequest, error) {
	idx := findPending(from, invitee, requests)
	if idx < 0 {
		return requests, ErrNoPendingRequest
	}
	requests[idx].Status = models.RequestDeclined
	return requests, nil
}

func findPending(from, to string, requests []models.FriendRequest) int {
	for i, r := range requests {
		if r.From == from && r.To == to && r.Status == models.RequestPending {
			return i
		}
	}
	return -1
}
