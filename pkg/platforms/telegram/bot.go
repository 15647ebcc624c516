package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sw33tLie/chanrotate/internal/utils"
	"github.com/sw33tLie/chanrotate/pkg/membership"
	"github.com/sw33tLie/chanrotate/pkg/whttp"
	"github.com/tidwall/gjson"
)

const (
	DefaultAPIURL = "https://api.telegram.org"
	retryMax      = 4
)

// APIError is a Bot API answer with "ok": false.
type APIError struct {
	Method      string
	Code        int64
	Description string
	RetryAfter  int64
}

func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("telegram %s: %d %s (retry after %ds)", e.Method, e.Code, e.Description, e.RetryAfter)
	}
	return fmt.Sprintf("telegram %s: %d %s", e.Method, e.Code, e.Description)
}

// Bot talks to the Telegram Bot API. It serves as the channel directory,
// membership control and invite control of a run.
type Bot struct {
	token  string
	apiURL string
	client *retryablehttp.Client
}

// NewBot creates a Bot API client. An empty apiURL selects DefaultAPIURL.
func NewBot(token, apiURL, proxy string) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is empty")
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	client, err := whttp.NewClient(proxy, retryMax)
	if err != nil {
		return nil, err
	}
	return &Bot{token: token, apiURL: strings.TrimSuffix(apiURL, "/"), client: client}, nil
}

// call invokes a Bot API method and returns its "result" field.
func (b *Bot) call(ctx context.Context, method string, params map[string]interface{}) (gjson.Result, error) {
	payload, err := json.Marshal(params)
	if err != nil {
		return gjson.Result{}, err
	}

	utils.Log.Debugf("Bot API %s %s", method, payload)
	res, err := whttp.SendHTTPRequest(ctx, &whttp.WHTTPReq{
		Method:  "POST",
		URL:     b.apiURL + "/bot" + b.token + "/" + method,
		Headers: []whttp.WHTTPHeader{{Name: "Content-Type", Value: "application/json"}},
		Body:    string(payload),
	}, b.client)
	if err != nil {
		// The request URL carries the token; never let it reach the operator's terminal.
		return gjson.Result{}, fmt.Errorf("telegram %s: %s", method, strings.ReplaceAll(err.Error(), b.token, "<token>"))
	}

	if !gjson.Valid(res.BodyString) {
		return gjson.Result{}, fmt.Errorf("telegram %s: unexpected response (HTTP %d)", method, res.StatusCode)
	}
	body := gjson.Parse(res.BodyString)
	if !body.Get("ok").Bool() {
		return gjson.Result{}, &APIError{
			Method:      method,
			Code:        body.Get("error_code").Int(),
			Description: body.Get("description").String(),
			RetryAfter:  body.Get("parameters.retry_after").Int(),
		}
	}
	return body.Get("result"), nil
}

// Username returns the bot's @username, which also validates the token.
func (b *Bot) Username(ctx context.Context) (string, error) {
	result, err := b.call(ctx, "getMe", map[string]interface{}{})
	if err != nil {
		return "", err
	}
	return result.Get("username").String(), nil
}

func (b *Bot) GetChannelTitle(ctx context.Context, channelID int64) (string, error) {
	result, err := b.call(ctx, "getChat", map[string]interface{}{"chat_id": channelID})
	if err != nil {
		return "", err
	}
	return result.Get("title").String(), nil
}

func (b *Bot) SetChannelTitle(ctx context.Context, channelID int64, title string) error {
	_, err := b.call(ctx, "setChatTitle", map[string]interface{}{"chat_id": channelID, "title": title})
	return err
}

func (b *Bot) GetMemberStatus(ctx context.Context, channelID, userID int64) (membership.PrivilegeLevel, error) {
	result, err := b.call(ctx, "getChatMember", map[string]interface{}{"chat_id": channelID, "user_id": userID})
	if err != nil {
		return membership.Member, err
	}
	return membership.ParseStatus(result.Get("status").String())
}

func (b *Bot) RemoveMember(ctx context.Context, channelID, userID, untilEpochSeconds int64) error {
	_, err := b.call(ctx, "banChatMember", map[string]interface{}{
		"chat_id":    channelID,
		"user_id":    userID,
		"until_date": untilEpochSeconds,
	})
	return err
}

// ExportNewInviteLink replaces the primary invite link; the old one stops working.
func (b *Bot) ExportNewInviteLink(ctx context.Context, channelID int64) (string, error) {
	result, err := b.call(ctx, "exportChatInviteLink", map[string]interface{}{"chat_id": channelID})
	if err != nil {
		return "", err
	}
	link := result.String()
	if link == "" {
		return "", fmt.Errorf("telegram exportChatInviteLink: empty link returned")
	}
	return link, nil
}
