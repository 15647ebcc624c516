package telegram

import (
	"context"
	"fmt"
	"iter"

	"github.com/gotd/td/tg"
	"github.com/sw33tLie/chanrotate/internal/utils"
	"github.com/sw33tLie/chanrotate/pkg/membership"
)

// botAPIChannelOffset is the "-100" prefix the Bot API puts in front of
// MTProto channel ids.
const botAPIChannelOffset int64 = 1_000_000_000_000

const defaultPageSize = 200

// ChannelIDFromBotAPI converts a Bot API chat id (-100XXXXXXXXXX) to the bare
// MTProto channel id.
func ChannelIDFromBotAPI(chatID int64) (int64, error) {
	if chatID > -botAPIChannelOffset {
		return 0, fmt.Errorf("chat id %d is not a channel or supergroup id", chatID)
	}
	return -chatID - botAPIChannelOffset, nil
}

// participantsAPI is the slice of *tg.Client the roster needs.
type participantsAPI interface {
	ChannelsGetParticipants(ctx context.Context, request *tg.ChannelsGetParticipantsRequest) (tg.ChannelsChannelParticipantsClass, error)
}

// Roster lists channel members over MTProto; the Bot API has no method for it.
type Roster struct {
	api      participantsAPI
	pageSize int
}

func NewRoster(api participantsAPI) *Roster {
	return &Roster{api: api, pageSize: defaultPageSize}
}

// ListMembers pages through the channel's participants, skipping deleted
// accounts. Pages are fetched lazily as the sequence is consumed.
func (r *Roster) ListMembers(ctx context.Context, channelID int64) iter.Seq2[membership.ChannelMember, error] {
	return func(yield func(membership.ChannelMember, error) bool) {
		id, err := ChannelIDFromBotAPI(channelID)
		if err != nil {
			yield(membership.ChannelMember{}, err)
			return
		}
		// Bots may address channels with a zero access hash.
		channel := &tg.InputChannel{ChannelID: id}

		offset := 0
		for {
			res, err := r.api.ChannelsGetParticipants(ctx, &tg.ChannelsGetParticipantsRequest{
				Channel: channel,
				Filter:  &tg.ChannelParticipantsRecent{},
				Offset:  offset,
				Limit:   r.pageSize,
			})
			if err != nil {
				yield(membership.ChannelMember{}, fmt.Errorf("channels.getParticipants: %w", err))
				return
			}

			page, ok := res.(*tg.ChannelsChannelParticipants)
			if !ok || len(page.Participants) == 0 {
				return
			}
			utils.Log.Debugf("Channel %d: fetched %d participants at offset %d (total %d)", channelID, len(page.Participants), offset, page.Count)

			users := make(map[int64]*tg.User, len(page.Users))
			for _, u := range page.Users {
				if user, ok := u.(*tg.User); ok {
					users[user.ID] = user
				}
			}

			for _, p := range page.Participants {
				userID, ok := participantUserID(p)
				if !ok {
					continue
				}
				user, ok := users[userID]
				if !ok || user.Deleted {
					continue
				}
				m := membership.ChannelMember{UserID: user.ID, Username: user.Username, FirstName: user.FirstName}
				if !yield(m, nil) {
					return
				}
			}

			offset += len(page.Participants)
			if offset >= page.Count {
				return
			}
		}
	}
}

// participantUserID returns the user behind a participant entry. Banned and
// left entries reference peers, not current members, and are skipped.
func participantUserID(p tg.ChannelParticipantClass) (int64, bool) {
	switch v := p.(type) {
	case *tg.ChannelParticipant:
		return v.UserID, true
	case *tg.ChannelParticipantSelf:
		return v.UserID, true
	case *tg.ChannelParticipantCreator:
		return v.UserID, true
	case *tg.ChannelParticipantAdmin:
		return v.UserID, true
	default:
		return 0, false
	}
}
