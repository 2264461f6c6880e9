package keepalive_test

import (
	"io"
	"net/http"
	"testing"

	"cinebob/internal/keepalive"
	"cinebob/internal/logging"
	"cinebob/internal/testsupport"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestKeepAliveEndpoints(t *testing.T) {
	server := keepalive.NewServer("127.0.0.1:0", testsupport.NewCatalog(t), logging.NewNop())
	if err := server.Start(); err != nil {
		t.Fatalf("start keepalive: %v", err)
	}
	t.Cleanup(func() {
		if err := server.Close(); err != nil {
			t.Errorf("close keepalive: %v", err)
		}
	})

	base := "http://" + server.Addr()

	status, body := get(t, base+"/")
	if status != http.StatusOK || body != "I'm alive" {
		t.Fatalf("GET / = %d %q", status, body)
	}

	status, body = get(t, base+"/healthz")
	if status != http.StatusOK || body != "ok movies=4\n" {
		t.Fatalf("GET /healthz = %d %q", status, body)
	}

	status, _ = get(t, base+"/nope")
	if status != http.StatusNotFound {
		t.Fatalf("GET /nope = %d, want 404", status)
	}
}

func TestKeepAliveNilCatalog(t *testing.T) {
	server := keepalive.NewServer("127.0.0.1:0", nil, logging.NewNop())
	if err := server.Start(); err != nil {
		t.Fatalf("start keepalive: %v", err)
	}
	t.Cleanup(func() { _ = server.Close() })

	status, body := get(t, "http://"+server.Addr()+"/healthz")
	if status != http.StatusOK || body != "ok movies=0\n" {
		t.Fatalf("GET /healthz = %d %q", status, body)
	}
}
