package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mtlprog/patrimoine/internal/config"
	"github.com/mtlprog/patrimoine/internal/domain"
)

func testConfig() config.Config {
	return config.Config{
		HTTPPort:     "0",
		RatesTimeout: time.Second,
		DefaultBase:  domain.EUR,
		Locale:       "fr-FR",
	}
}

func ratesServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"EUR","rates":{"EUR":1,"AED":4,"GEL":3}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runContext(t, context.Background(), args...)
}

func runContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(testConfig())
	app.Writer = &out
	app.ErrWriter = &out
	err := app.RunContext(ctx, append([]string{"patrimoine"}, args...))
	return out.String(), err
}

func TestShowPlain(t *testing.T) {
	srv := ratesServer(t)

	out, err := run(t, "--rates-url", srv.URL, "show", "--plain", "--base", "AED", "--tab", "realestate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"# Patrimoine Global", "Patrimoine Immobilier", "Quiberon"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestShowFallsBackWhenRatesUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	out, err := run(t, "--rates-url", srv.URL, "show", "--plain")
	if err != nil {
		t.Fatalf("fallback rates should keep show working: %v", err)
	}
	if !strings.Contains(out, "Patrimoine Net") {
		t.Errorf("output missing KPIs:\n%s", out)
	}
}

func TestShowRejectsInvalidFlags(t *testing.T) {
	srv := ratesServer(t)

	if _, err := run(t, "--rates-url", srv.URL, "show", "--base", "GEL"); err == nil {
		t.Error("expected error for unsupported base")
	}
	if _, err := run(t, "--rates-url", srv.URL, "show", "--tab", "history"); err == nil {
		t.Error("expected error for unknown tab")
	}
}

func TestShowRejectsMissingHoldingsFile(t *testing.T) {
	srv := ratesServer(t)

	_, err := run(t, "--rates-url", srv.URL, "--holdings", filepath.Join(t.TempDir(), "missing.yaml"), "show")
	if err == nil {
		t.Error("expected error for missing holdings file")
	}
}

func TestExport(t *testing.T) {
	srv := ratesServer(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")

	if _, err := run(t, "--rates-url", srv.URL, "export", "--out", path, "--base", "AED"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("workbook is empty")
	}
}

func TestServeFailsWhenPortBusy(t *testing.T) {
	srv := ratesServer(t)

	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("reserving port: %v", err)
	}
	defer ln.Close()
	_, port, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatalf("splitting address: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := run(t, "--rates-url", srv.URL, "serve", "--port", port)
		done <- err
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Error("expected error when the port is already in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return on a busy port")
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	srv := ratesServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := runContext(t, ctx, "--rates-url", srv.URL, "serve", "--port", "0")
		done <- err
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error on shutdown: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancellation")
	}
}
