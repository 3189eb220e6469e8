package models

// MembershipStatus is the lifecycle state of a club membership
type MembershipStatus string

const (
	MembershipStatusPending  MembershipStatus = "pending"
	MembershipStatusActive   MembershipStatus = "active"
	MembershipStatusRejected MembershipStatus = "rejected"
)

// JoinRequestStatus is the lifecycle state of a team join request
type JoinRequestStatus string

const (
	JoinRequestStatusPending   JoinRequestStatus = "pending"
	JoinRequestStatusAccepted  JoinRequestStatus = "accepted"
	JoinRequestStatusRejected  JoinRequestStatus = "rejected"
	JoinRequestStatusWithdrawn JoinRequestStatus = "withdrawn"
)

// IsValid checks if the MembershipStatus is valid
func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipStatusPending, MembershipStatusActive, MembershipStatusRejected:
		return true
	}
	return false
}

// IsValid checks if the JoinRequestStatus is valid
func (s JoinRequestStatus) IsValid() bool {
	switch s {
	case JoinRequestStatusPending, JoinRequestStatusAccepted, JoinRequestStatusRejected, JoinRequestStatusWithdrawn:
		return true
	}
	return false
}

// IsLive reports whether the request still occupies the user's slot for the event
func (s JoinRequestStatus) IsLive() bool {
	return s == JoinRequestStatusPending || s == JoinRequestStatusAccepted
}
