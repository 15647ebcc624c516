package whttp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSendHTTPRequestPostsBodyAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected content type %q", got)
		}
		b, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write(b)
	}))
	defer srv.Close()

	client, err := NewClient("", 0)
	if err != nil {
		t.Fatal(err)
	}
	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{
		Method:  "POST",
		URL:     srv.URL,
		Headers: []WHTTPHeader{{Name: "Content-Type", Value: "application/json"}},
		Body:    `{"chat_id":1}`,
	}, client)
	if err != nil {
		t.Fatalf("SendHTTPRequest: %v", err)
	}
	if res.StatusCode != 200 || res.BodyString != `{"chat_id":1}` {
		t.Fatalf("unexpected response %+v", res)
	}
	if res.HTTPTitle != "" {
		t.Fatalf("json response must not get an HTML title, got %q", res.HTTPTitle)
	}
}

func TestSendHTTPRequestExtractsTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><head><title>\n Telegram: Join Group Chat\r\n</title></head><body></body></html>"))
	}))
	defer srv.Close()

	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{Method: "GET", URL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("SendHTTPRequest: %v", err)
	}
	if res.HTTPTitle != "Telegram: Join Group Chat" {
		t.Fatalf("unexpected title %q", res.HTTPTitle)
	}
}

func TestNewClientRetriesServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client, err := NewClient("", 2)
	if err != nil {
		t.Fatal(err)
	}
	client.RetryWaitMin = 0
	client.RetryWaitMax = 0

	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{Method: "GET", URL: srv.URL}, client)
	if err != nil {
		t.Fatalf("SendHTTPRequest: %v", err)
	}
	if res.BodyString != "ok" || atomic.LoadInt32(&hits) != 2 {
		t.Fatalf("expected one retry, hits=%d body=%q", hits, res.BodyString)
	}
}

func TestNewClientRejectsBadProxy(t *testing.T) {
	if _, err := NewClient("://bad", 1); err == nil {
		t.Fatal("expected invalid proxy error")
	}
}

func TestNewClientReturnsLastResponseWhenRetriesRunOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"ok":false}`))
	}))
	defer srv.Close()

	client, err := NewClient("", 1)
	if err != nil {
		t.Fatal(err)
	}
	client.RetryWaitMin = 0
	client.RetryWaitMax = 0

	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{Method: "GET", URL: srv.URL}, client)
	if err != nil {
		t.Fatalf("expected the final response, got error %v", err)
	}
	if res.StatusCode != http.StatusServiceUnavailable || res.BodyString != `{"ok":false}` {
		t.Fatalf("unexpected response %+v", res)
	}
}
