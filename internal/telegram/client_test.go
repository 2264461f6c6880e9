package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const testToken = "12345:secret"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(testToken, WithBaseURL(server.URL), WithTimeout(2*time.Second))
}

func writeResult(t *testing.T, w http.ResponseWriter, result any) {
	t.Helper()

	encoded, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	fmt.Fprintf(w, `{"ok":true,"result":%s}`, encoded)
}

func TestGetMe(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bot"+testToken+"/getMe" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		writeResult(t, w, User{ID: 7, IsBot: true, FirstName: "CineBob", Username: "CineBobBot"})
	})

	user, err := client.GetMe(context.Background())
	if err != nil {
		t.Fatalf("GetMe: %v", err)
	}
	if user.Username != "CineBobBot" || !user.IsBot {
		t.Fatalf("user = %+v", user)
	}
}

func TestGetUpdatesPassesOffsetAndTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req getUpdatesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Offset != 42 || req.Timeout != 5 {
			t.Errorf("request = %+v", req)
		}
		writeResult(t, w, []Update{
			{UpdateID: 42, Message: &Message{Chat: Chat{ID: 9}, Text: "/start"}},
		})
	})

	updates, err := client.GetUpdates(context.Background(), 42, 5*time.Second)
	if err != nil {
		t.Fatalf("GetUpdates: %v", err)
	}
	if len(updates) != 1 || updates[0].Message.Text != "/start" {
		t.Fatalf("updates = %+v", updates)
	}
}

func TestSendMessageUsesHTMLAndTruncates(t *testing.T) {
	var captured sendMessageRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		writeResult(t, w, Message{MessageID: 1})
	})

	long := strings.Repeat("x", MaxMessageLength+500)
	if err := client.SendMessage(context.Background(), 9, long); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if captured.ChatID != 9 {
		t.Fatalf("chat id = %d", captured.ChatID)
	}
	if captured.ParseMode != "HTML" {
		t.Fatalf("parse mode = %q", captured.ParseMode)
	}
	if len(captured.Text) != MaxMessageLength {
		t.Fatalf("text length = %d, want %d", len(captured.Text), MaxMessageLength)
	}
}

func TestAPIErrorCarriesRetryAfter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 3","parameters":{"retry_after":3}}`)
	})

	err := client.SendMessage(context.Background(), 9, "hello")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != 429 || apiErr.RetryAfter != 3*time.Second {
		t.Fatalf("api error = %+v", apiErr)
	}
	if !strings.Contains(apiErr.Error(), "429") {
		t.Fatalf("error string = %q", apiErr.Error())
	}
}

func TestCallRejectsNonJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html>gateway error</html>")
	})

	if _, err := client.GetMe(context.Background()); err == nil {
		t.Fatal("expected parse error for non-JSON body")
	}
}
