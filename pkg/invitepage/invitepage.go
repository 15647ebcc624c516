// Package invitepage reads the public t.me preview page of an invite link, so
// an operator can check where a link points without joining.
package invitepage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sw33tLie/chanrotate/pkg/whttp"
)

// Page is what the preview page says about the link.
type Page struct {
	URL         string
	Title       string
	Description string
	Extra       string
	// Valid is false when Telegram shows its generic page, which happens for
	// revoked or expired links.
	Valid bool
}

// Fetch downloads and parses the preview page for link.
func Fetch(ctx context.Context, link string, client *retryablehttp.Client) (Page, error) {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return Page{}, fmt.Errorf("invalid invite link %q", link)
	}

	res, err := whttp.SendHTTPRequest(ctx, &whttp.WHTTPReq{Method: "GET", URL: link}, client)
	if err != nil {
		return Page{}, err
	}
	if res.StatusCode != 200 {
		return Page{}, fmt.Errorf("invite page returned HTTP %d", res.StatusCode)
	}

	page, err := Parse(res.BodyString)
	if err != nil {
		return Page{}, err
	}
	page.URL = link
	if page.Title == "" {
		page.Title = res.HTTPTitle
	}
	return page, nil
}

// Parse extracts the channel information from a t.me preview page body.
func Parse(body string) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return Page{}, err
	}

	page := Page{
		Title:       cleanText(doc.Find(".tgme_page_title").First().Text()),
		Description: cleanText(doc.Find(".tgme_page_description").First().Text()),
		Extra:       cleanText(doc.Find(".tgme_page_extra").First().Text()),
	}
	if page.Title == "" {
		if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
			page.Title = cleanText(og)
		}
	}

	// Revoked links render the page without a title block or join action.
	page.Valid = doc.Find(".tgme_page_title").Length() > 0 && doc.Find(".tgme_action_button_new").Length() > 0
	return page, nil
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
