package domain

import (
	"strings"
	"time"
)

// ChannelAddress is a logical identifier selecting a team message thread:
// either the shared GLOBAL channel or a PRIVATE_<staffId> pair channel.
// Per-complaint correspondence lives in a disjoint address space keyed by
// complaint id and is routed through the complaint thread, not here.
type ChannelAddress string

// ChannelGlobal is the single channel shared by all staff and the
// supervisor.
const ChannelGlobal ChannelAddress = "GLOBAL"

const privateChannelPrefix = "PRIVATE_"

// PrivateChannel returns the address of the supervisor pair channel owned
// by the given staff member.
func PrivateChannel(staffID string) ChannelAddress {
	return ChannelAddress(privateChannelPrefix + staffID)
}

// IsGlobal reports whether the address names the shared channel.
func (a ChannelAddress) IsGlobal() bool {
	return a == ChannelGlobal
}

// PrivateOwner returns the staff id a private channel belongs to.
func (a ChannelAddress) PrivateOwner() (string, bool) {
	s := string(a)
	if !strings.HasPrefix(s, privateChannelPrefix) {
		return "", false
	}
	owner := s[len(privateChannelPrefix):]
	if owner == "" {
		return "", false
	}
	return owner, true
}

// Valid reports whether the address belongs to the team-channel address
// space at all.
func (a ChannelAddress) Valid() bool {
	if a.IsGlobal() {
		return true
	}
	_, ok := a.PrivateOwner()
	return ok
}

// AccessibleBy enforces channel membership: GLOBAL admits all staff and the
// supervisor; a private channel admits only its owning staff member and the
// supervisor. Citizens never address team channels.
func (a ChannelAddress) AccessibleBy(actor *Actor) bool {
	switch actor.Role {
	case RoleSupervisor:
		return a.Valid()
	case RoleStaff:
		if a.IsGlobal() {
			return true
		}
		owner, ok := a.PrivateOwner()
		return ok && owner == actor.ID
	}
	return false
}

// TeamMessage is an internal office message. Immutable once appended, and
// belongs to exactly one channel address.
type TeamMessage struct {
	ID         string
	SenderID   string
	SenderName string
	Channel    ChannelAddress
	Text       string
	CreatedAt  time.Time
}
