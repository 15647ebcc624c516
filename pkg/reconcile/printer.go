package reconcile

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sw33tLie/chanrotate/pkg/membership"
	"github.com/sw33tLie/chanrotate/pkg/mode"
)

// Printer writes the human-readable action report. Simulated actions are
// worded in the future tense ("will be") so a dry run never reads as done.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Banner announces the execution mode before anything else happens.
func (p *Printer) Banner(m mode.Mode) {
	if m.IsCommit() {
		fmt.Fprintln(p.w, color.New(color.FgRed, color.Bold, color.Underline).Sprint("Running in live mode."))
		return
	}
	fmt.Fprintln(p.w, color.New(color.FgGreen, color.Bold, color.Underline).Sprint("Running in [DRY_RUN] mode, actions will be simulated."))
}

// ChannelHeader opens the report of one channel.
func (p *Printer) ChannelHeader(title string) {
	fmt.Fprintln(p.w, color.New(color.FgYellow, color.Bold, color.Underline).Sprint("The following actions will be performed on channel: ["+title+"]"))
}

// Removal reports one removed (or to-be-removed) member.
func (p *Printer) Removal(m membership.ChannelMember, committed bool) {
	handle := color.New(color.FgRed).Sprint(m.Handle())
	if committed {
		fmt.Fprintln(p.w, "Member: "+handle+" was removed from chat")
		return
	}
	fmt.Fprintln(p.w, "Member: "+handle+" will be removed from chat.")
}

// RemovalTotal reports how many members a channel lost.
func (p *Printer) RemovalTotal(n int, committed bool) {
	if committed {
		fmt.Fprintln(p.w, color.YellowString("A total of (%d) users has been kicked out of the channel.", n))
		return
	}
	fmt.Fprintln(p.w, color.YellowString("A total of (%d) users will be kicked out of the channel.", n))
}

// Title reports the rotated channel title.
func (p *Printer) Title(title string, committed bool) {
	if committed {
		fmt.Fprintln(p.w, "Channel title was set to: "+color.GreenString("%s", title))
		return
	}
	fmt.Fprintln(p.w, "New channel title will be: "+color.GreenString("%s", title))
}

// Invite reports the new invite link, or the placeholder in Simulate mode.
func (p *Printer) Invite(link string, committed bool) {
	if !committed {
		fmt.Fprintln(p.w, color.CyanString("New channel invite will be generated, old one will be invalidated."))
	}
	fmt.Fprintln(p.w, "New channel invite: "+color.YellowString("%s", link))
}
