// Package membership decides which channel members are removed during maintenance.
package membership

import (
	"fmt"
	"strconv"
)

// PrivilegeLevel is a member's standing in a channel.
type PrivilegeLevel int

const (
	Member PrivilegeLevel = iota
	Owner
	Administrator
	Restricted
	Left
	Banned
)

// Levels lists every privilege level, in declaration order.
var Levels = []PrivilegeLevel{Member, Owner, Administrator, Restricted, Left, Banned}

// statusMap maps Bot API ChatMember.status values to privilege levels.
var statusMap = map[string]PrivilegeLevel{
	"creator":       Owner,
	"administrator": Administrator,
	"member":        Member,
	"restricted":    Restricted,
	"left":          Left,
	"kicked":        Banned,
}

// ParseStatus converts a remote member status into a PrivilegeLevel.
func ParseStatus(status string) (PrivilegeLevel, error) {
	level, ok := statusMap[status]
	if !ok {
		return Member, fmt.Errorf("unknown member status %q", status)
	}
	return level, nil
}

func (p PrivilegeLevel) String() string {
	switch p {
	case Member:
		return "member"
	case Owner:
		return "owner"
	case Administrator:
		return "administrator"
	case Restricted:
		return "restricted"
	case Left:
		return "left"
	case Banned:
		return "banned"
	default:
		return "PrivilegeLevel(" + strconv.Itoa(int(p)) + ")"
	}
}

// ChannelMember is one entry of a channel roster. Level is only meaningful
// after it has been re-resolved from the live member status.
type ChannelMember struct {
	UserID    int64
	Username  string
	FirstName string
	Level     PrivilegeLevel
}

// Handle returns the member's display handle: @username when set, then the
// first name, then the numeric id.
func (m ChannelMember) Handle() string {
	switch {
	case m.Username != "":
		return "@" + m.Username
	case m.FirstName != "":
		return m.FirstName
	default:
		return strconv.FormatInt(m.UserID, 10)
	}
}

// ShouldRemove reports whether a member is removed by maintenance. Owners and
// administrators are kept; everyone else goes.
func ShouldRemove(m ChannelMember) bool {
	return m.Level != Owner && m.Level != Administrator
}
