package models

// WaitingUser is a queued, unmatched participant awaiting a compatible partner.
// It references the connection by id only; the live socket stays in the
// transport layer.
type WaitingUser struct {
	ConnectionID string `json:"connectionId"`
	Nickname     string `json:"nickname"`
	Gender       string `json:"gender"`
	GenderFilter string `json:"genderFilter"`
}

// Room is an active two-party chat session.
type Room struct {
	ID      string `json:"roomID"`
	MemberA string `json:"memberA"`
	MemberB string `json:"memberB"`
}

// Contains reports whether connID is a member of the room.
func (r Room) Contains(connID string) bool {
	return r.MemberA == connID || r.MemberB == connID
}

// Peer returns the other member of the room.
func (r Room) Peer(connID string) string {
	if r.MemberA == connID {
		return r.MemberB
	}
	return r.MemberA
}

// UsageRecord tracks filtered-match attempts for one device on one calendar day.
type UsageRecord struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
