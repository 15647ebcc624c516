package cmd

import (
	"bytes"
	"context"
	"iter"
	"strings"
	"testing"

	"github.com/sw33tLie/chanrotate/pkg/membership"
)

type readOnlyRemote struct {
	members  []membership.ChannelMember
	statuses map[int64]membership.PrivilegeLevel
	mutated  bool
}

func (r *readOnlyRemote) ListMembers(ctx context.Context, channelID int64) iter.Seq2[membership.ChannelMember, error] {
	return func(yield func(membership.ChannelMember, error) bool) {
		for _, m := range r.members {
			if !yield(m, nil) {
				return
			}
		}
	}
}

func (r *readOnlyRemote) GetChannelTitle(ctx context.Context, channelID int64) (string, error) {
	return "VIP Club Octubre '23", nil
}

func (r *readOnlyRemote) SetChannelTitle(ctx context.Context, channelID int64, title string) error {
	r.mutated = true
	return nil
}

func (r *readOnlyRemote) GetMemberStatus(ctx context.Context, channelID, userID int64) (membership.PrivilegeLevel, error) {
	return r.statuses[userID], nil
}

func (r *readOnlyRemote) RemoveMember(ctx context.Context, channelID, userID, until int64) error {
	r.mutated = true
	return nil
}

func TestListChannelMembers(t *testing.T) {
	r := &readOnlyRemote{
		members: []membership.ChannelMember{
			{UserID: 1, Username: "boss"},
			{UserID: 2, Username: "reader"},
			{UserID: 3, FirstName: "Ana"},
		},
		statuses: map[int64]membership.PrivilegeLevel{
			1: membership.Owner,
			2: membership.Member,
			3: membership.Administrator,
		},
	}

	var out bytes.Buffer
	if err := listChannelMembers(context.Background(), &out, -1001, r, r, r); err != nil {
		t.Fatalf("listChannelMembers: %v", err)
	}
	if r.mutated {
		t.Fatal("members listing must not mutate the channel")
	}

	text := out.String()
	for _, want := range []string{"VIP Club Octubre '23", "@reader", "3 members, 1 would be removed"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}
