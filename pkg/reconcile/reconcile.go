// Package reconcile runs the per-channel maintenance workflow: remove every
// non-privileged member, rotate the title to the current month and issue a
// new invite link.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/sw33tLie/chanrotate/internal/utils"
	"github.com/sw33tLie/chanrotate/pkg/membership"
	"github.com/sw33tLie/chanrotate/pkg/mode"
	"github.com/sw33tLie/chanrotate/pkg/rotation"
)

const (
	// BanUntil is passed as the ban expiry. Values under 30 seconds from now
	// are treated by Telegram as "forever", so this removes the member for good.
	BanUntil int64 = 31

	// PlaceholderInviteLink is reported instead of a real link in Simulate mode.
	PlaceholderInviteLink = "https://t.me/+newchannel"
)

// Report is what one channel pass did (or would do, in Simulate mode).
type Report struct {
	ChannelID  int64
	Title      string
	Removed    int
	NewTitle   string
	InviteLink string
	Committed  bool
}

// Reconciler performs the maintenance steps for a single channel.
type Reconciler struct {
	mode     mode.Mode
	c        Collaborators
	prompter rotation.OverridePrompter
	printer  *Printer
	now      func() time.Time
}

// New returns a Reconciler that applies m to every mutating step.
func New(m mode.Mode, c Collaborators, prompter rotation.OverridePrompter, printer *Printer) *Reconciler {
	return &Reconciler{
		mode:     m,
		c:        c,
		prompter: prompter,
		printer:  printer,
		now:      time.Now,
	}
}

// WithClock overrides the date used for title rotation.
func (r *Reconciler) WithClock(now func() time.Time) *Reconciler {
	r.now = now
	return r
}

// Reconcile runs roster fetch, removals, title rotation and invite
// regeneration, in that order. The first error stops the pass; later steps
// are not attempted.
func (r *Reconciler) Reconcile(ctx context.Context, channelID int64) (Report, error) {
	rep := Report{ChannelID: channelID, Committed: r.mode.IsCommit()}

	title, err := r.c.Directory.GetChannelTitle(ctx, channelID)
	if err != nil {
		return rep, fmt.Errorf("get channel title: %w", err)
	}
	rep.Title = title
	r.printer.ChannelHeader(title)

	removed, err := r.removeMembers(ctx, channelID)
	rep.Removed = removed
	if err != nil {
		return rep, err
	}

	newTitle, err := r.rotateTitle(ctx, channelID, title)
	if err != nil {
		return rep, err
	}
	rep.NewTitle = newTitle

	link, err := r.renewInvite(ctx, channelID)
	if err != nil {
		return rep, err
	}
	rep.InviteLink = link

	return rep, nil
}

func (r *Reconciler) removeMembers(ctx context.Context, channelID int64) (int, error) {
	counter := 0
	for m, err := range r.c.Roster.ListMembers(ctx, channelID) {
		if err != nil {
			return counter, fmt.Errorf("list members: %w", err)
		}

		// The roster snapshot is not trusted for privileges; ask again right before acting.
		level, err := r.c.Members.GetMemberStatus(ctx, channelID, m.UserID)
		if err != nil {
			return counter, fmt.Errorf("get status of member %d: %w", m.UserID, err)
		}
		m.Level = level
		utils.Log.Debugf("Channel %d member %s is %s", channelID, m.Handle(), level)

		if !membership.ShouldRemove(m) {
			continue
		}
		if r.mode.IsCommit() {
			if err := r.c.Members.RemoveMember(ctx, channelID, m.UserID, BanUntil); err != nil {
				return counter, fmt.Errorf("remove member %d: %w", m.UserID, err)
			}
		}
		r.printer.Removal(m, r.mode.IsCommit())
		counter++
	}
	r.printer.RemovalTotal(counter, r.mode.IsCommit())
	return counter, nil
}

func (r *Reconciler) rotateTitle(ctx context.Context, channelID int64, current string) (string, error) {
	newTitle, err := rotation.Rotate(ctx, current, r.now(), r.prompter)
	if err != nil {
		return "", fmt.Errorf("rotate title: %w", err)
	}
	if r.mode.IsCommit() {
		if err := r.c.Directory.SetChannelTitle(ctx, channelID, newTitle); err != nil {
			return "", fmt.Errorf("set channel title: %w", err)
		}
	}
	r.printer.Title(newTitle, r.mode.IsCommit())
	return newTitle, nil
}

func (r *Reconciler) renewInvite(ctx context.Context, channelID int64) (string, error) {
	link := PlaceholderInviteLink
	if r.mode.IsCommit() {
		var err error
		link, err = r.c.Invites.ExportNewInviteLink(ctx, channelID)
		if err != nil {
			return "", fmt.Errorf("export invite link: %w", err)
		}
	}
	r.printer.Invite(link, r.mode.IsCommit())
	return link, nil
}
