package reconcile

import (
	"context"
	"iter"

	"github.com/sw33tLie/chanrotate/pkg/membership"
)

// RosterSource lists the members of a channel, skipping deleted accounts.
// The sequence is lazy and is consumed once per channel.
type RosterSource interface {
	ListMembers(ctx context.Context, channelID int64) iter.Seq2[membership.ChannelMember, error]
}

// ChannelDirectory reads and writes channel titles.
type ChannelDirectory interface {
	GetChannelTitle(ctx context.Context, channelID int64) (string, error)
	SetChannelTitle(ctx context.Context, channelID int64, title string) error
}

// MembershipControl resolves live member status and removes members.
type MembershipControl interface {
	GetMemberStatus(ctx context.Context, channelID, userID int64) (membership.PrivilegeLevel, error)
	RemoveMember(ctx context.Context, channelID, userID, untilEpochSeconds int64) error
}

// InviteControl issues a fresh primary invite link, revoking the previous one.
type InviteControl interface {
	ExportNewInviteLink(ctx context.Context, channelID int64) (string, error)
}

// Collaborators groups the remote API clients a Reconciler talks to.
type Collaborators struct {
	Roster    RosterSource
	Directory ChannelDirectory
	Members   MembershipControl
	Invites   InviteControl
}
