package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func newTestMiddleware(t *testing.T) Middleware {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log)
}

func TestArtisanMiddleware(t *testing.T) {
	m := newTestMiddleware(t)

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Get("/whoami", m.NewArtisanMiddleware, func(c *fiber.Ctx) error {
		return c.SendString(m.GetArtisanID(c))
	})

	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "header", target: "/whoami", header: " artisan-1 ", wantStatus: fiber.StatusOK, wantBody: "artisan-1"},
		{name: "query", target: "/whoami?artisan_id=artisan-2", wantStatus: fiber.StatusOK, wantBody: "artisan-2"},
		{name: "missing", target: "/whoami", wantStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(ArtisanIDHeader, tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != tt.wantBody {
					t.Fatalf("body = %q, want %q", body, tt.wantBody)
				}
			}
			if resp.Header.Get(RequestIDKey) == "" {
				t.Fatal("missing request id header")
			}
		})
	}
}

func TestRequestIDIsKept(t *testing.T) {
	m := newTestMiddleware(t)

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(m.GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "req-42")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "req-42" {
		t.Fatalf("request id = %q, want req-42", body)
	}
}

func TestRateLimiter(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "0.001")
	t.Setenv("RATE_LIMIT_BURST", "2")
	m := newTestMiddleware(t)

	app := fiber.New()
	app.Get("/", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	want := []int{fiber.StatusNoContent, fiber.StatusNoContent, fiber.StatusTooManyRequests}
	for i, status := range want {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != status {
			t.Fatalf("request %d status = %d, want %d", i, resp.StatusCode, status)
		}
	}
}

func TestSanitizeRequestBody(t *testing.T) {
	got := sanitizeRequestBody([]byte(`{"api_key":"abc","language":"hi"}`))
	if !strings.Contains(got, `"api_key":"[SECRET]"`) || strings.Contains(got, "abc") {
		t.Fatalf("sanitized = %s", got)
	}
	if got := sanitizeRequestBody([]byte("not json")); got != "[non-JSON body]" {
		t.Fatalf("sanitized = %s", got)
	}
}
