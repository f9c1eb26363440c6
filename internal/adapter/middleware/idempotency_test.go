package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const idempKey = "deadbeefdeadbeefdeadbeefdeadbeef"

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func doIdemp(t *testing.T, mw echo.MiddlewareFunc, h echo.HandlerFunc, method, body, key string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/applications", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := mw(h)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return rec
}

func countingHandler(calls *int) echo.HandlerFunc {
	return func(c echo.Context) error {
		*calls++
		return c.JSON(http.StatusOK, map[string]any{"success": true, "n": *calls})
	}
}

func TestIdempotency_GetBypasses(t *testing.T) {
	mw := Idempotency(newTestRedis(t), time.Minute)
	calls := 0

	rec := doIdemp(t, mw, countingHandler(&calls), http.MethodGet, "", idempKey)
	if rec.Code != http.StatusOK || calls != 1 {
		t.Fatalf("code=%d calls=%d", rec.Code, calls)
	}
	// a second GET with the same key is not deduped
	doIdemp(t, mw, countingHandler(&calls), http.MethodGet, "", idempKey)
	if calls != 2 {
		t.Fatalf("GET must never be deduped, calls=%d", calls)
	}
}

func TestIdempotency_NoKeyBypasses(t *testing.T) {
	mw := Idempotency(newTestRedis(t), time.Minute)
	calls := 0

	doIdemp(t, mw, countingHandler(&calls), http.MethodPost, `{"a":1}`, "")
	doIdemp(t, mw, countingHandler(&calls), http.MethodPost, `{"a":1}`, "")
	if calls != 2 {
		t.Fatalf("keyless requests deduped, calls=%d", calls)
	}
}

func TestIdempotency_InvalidKeyFormat(t *testing.T) {
	mw := Idempotency(newTestRedis(t), time.Minute)
	calls := 0

	rec := doIdemp(t, mw, countingHandler(&calls), http.MethodPost, `{"a":1}`, "not-a-valid-key")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	if calls != 0 {
		t.Fatal("handler ran despite invalid key")
	}
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	mw := Idempotency(newTestRedis(t), time.Minute)
	calls := 0
	h := countingHandler(&calls)

	first := doIdemp(t, mw, h, http.MethodPost, `{"a":1}`, idempKey)
	if first.Code != http.StatusOK || calls != 1 {
		t.Fatalf("first: code=%d calls=%d", first.Code, calls)
	}

	second := doIdemp(t, mw, h, http.MethodPost, `{"a":1}`, idempKey)
	if second.Code != http.StatusOK {
		t.Fatalf("replay code = %d", second.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran again on a retry, calls=%d", calls)
	}
	if second.Body.String() != first.Body.String() {
		t.Fatalf("replayed body differs:\n first: %s\nsecond: %s", first.Body.String(), second.Body.String())
	}
}

func TestIdempotency_KeyReuseWithDifferentBody(t *testing.T) {
	mw := Idempotency(newTestRedis(t), time.Minute)
	calls := 0
	h := countingHandler(&calls)

	doIdemp(t, mw, h, http.MethodPost, `{"a":1}`, idempKey)
	rec := doIdemp(t, mw, h, http.MethodPost, `{"a":2}`, idempKey)
	if rec.Code != http.StatusConflict {
		t.Fatalf("code = %d, want 409", rec.Code)
	}
	if calls != 1 {
		t.Fatalf("second body ran, calls=%d", calls)
	}
}

func TestIdempotency_ConcurrentDuplicate(t *testing.T) {
	rdb := newTestRedis(t)
	mw := Idempotency(rdb, time.Minute)
	calls := 0

	// a provisional lock is already held for this key and body
	body := `{"a":1}`
	storeKey := buildKey(http.MethodPost, "", "", idempKey)
	ok, err := provisionalSet(context.Background(), rdb, storeKey, idempEntry{
		InProgress: true,
		BodySHA256: bodyHash([]byte(body)),
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil || !ok {
		t.Fatalf("seed lock: ok=%v err=%v", ok, err)
	}

	rec := doIdemp(t, mw, countingHandler(&calls), http.MethodPost, body, idempKey)
	if rec.Code != http.StatusConflict {
		t.Fatalf("code = %d, want 409 (body %s)", rec.Code, rec.Body.String())
	}
	if calls != 0 {
		t.Fatal("handler ran while the original request was in flight")
	}
}

func TestValidIdempotencyKey(t *testing.T) {
	cases := []struct {
		key string
		ok  bool
	}{
		{"deadbeefdeadbeefdeadbeefdeadbeef", true},
		{"DEADBEEFDEADBEEFDEADBEEFDEADBEEF", true}, // normalized to lowercase
		{"6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"", false},
		{"short", false},
		{"zzzzbeefdeadbeefdeadbeefdeadbeef", false},
	}
	for _, tc := range cases {
		if got := validIdempotencyKey(tc.key); got != tc.ok {
			t.Errorf("validIdempotencyKey(%q) = %v, want %v", tc.key, got, tc.ok)
		}
	}
}
