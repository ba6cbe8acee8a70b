package validation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.uber.org/zap"

	"WebBasics/internal/validation"
	"WebBasics/pkg/kit"
)

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	h := validation.NewHandler(&validation.Server{Log: zap.NewNop()}, kit.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "validation",
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode: %v body=%s", err, rr.Body.String())
	}
}

func details(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var er struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	decode(t, rr, &er)
	if er.Error != "validation failed" {
		t.Fatalf("error=%q", er.Error)
	}
	return er.Details
}

func TestEchoName(t *testing.T) {
	var body map[string]string

	decode(t, serve(t, "/strings/items"), &body)
	if body["name"] != "Unknown" {
		t.Fatalf("default name=%q", body["name"])
	}

	decode(t, serve(t, "/strings/items?name=ada"), &body)
	if body["name"] != "ada" {
		t.Fatalf("name=%q", body["name"])
	}
}

func TestValidateContact_OK(t *testing.T) {
	q := url.Values{"name": {"Alice"}, "email": {"alice.b+x@mail.example.org"}}
	rr := serve(t, "/strings/validate?"+q.Encode())
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	var body map[string]string
	decode(t, rr, &body)
	if body["Name"] != "Alice" || body["Email"] != "alice.b+x@mail.example.org" {
		t.Fatalf("body=%v", body)
	}
}

func TestValidateContact_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		query url.Values
		field string
		msg   string
	}{
		{"missing name", url.Values{"email": {"a@b.io"}}, "name", "This field is required"},
		{"short name", url.Values{"name": {"Al"}, "email": {"a@b.io"}}, "name", "Minimum length is 3"},
		{"digits in name", url.Values{"name": {"Al1ce"}, "email": {"a@b.io"}}, "name", "Must contain only letters"},
		{"bad email", url.Values{"name": {"Alice"}, "email": {"alice@nowhere"}}, "email", "Must be a valid email address"},
		{"short email", url.Values{"name": {"Alice"}, "email": {"a@b"}}, "email", "Minimum length is 5"},
	}

	for _, tc := range cases {
		rr := serve(t, "/strings/validate?"+tc.query.Encode())
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: status=%d", tc.name, rr.Code)
		}
		if got := details(t, rr)[tc.field]; got != tc.msg {
			t.Fatalf("%s: %s=%q want=%q", tc.name, tc.field, got, tc.msg)
		}
	}
}

func TestItemID_Range(t *testing.T) {
	for _, ok := range []string{"1", "500", "1000"} {
		rr := serve(t, "/numbers/items/"+ok)
		if rr.Code != http.StatusOK {
			t.Fatalf("item_id=%s status=%d", ok, rr.Code)
		}
	}

	var body map[string]int
	decode(t, serve(t, "/numbers/items/77"), &body)
	if body["item_id"] != 77 {
		t.Fatalf("body=%v", body)
	}

	for _, bad := range []string{"0", "1001", "-4", "seven"} {
		rr := serve(t, "/numbers/items/"+bad)
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("item_id=%s status=%d", bad, rr.Code)
		}
	}
}

func TestPriceRange(t *testing.T) {
	rr := serve(t, "/numbers/items?min_price=0.5&max_price=999.99")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	var body map[string]float64
	decode(t, rr, &body)
	if body["min_price"] != 0.5 || body["max_price"] != 999.99 {
		t.Fatalf("body=%v", body)
	}
}

func TestPriceRange_Rejects(t *testing.T) {
	cases := []struct {
		query string
		field string
		msg   string
	}{
		{"max_price=10", "min_price", "This field is required"},
		{"min_price=0&max_price=10", "min_price", "Must be greater than 0"},
		{"min_price=1&max_price=1000", "max_price", "Must be less than 1000"},
		{"min_price=cheap&max_price=10", "min_price", "Must be a number"},
	}

	for _, tc := range cases {
		rr := serve(t, "/numbers/items?"+tc.query)
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: status=%d", tc.query, rr.Code)
		}
		if got := details(t, rr)[tc.field]; got != tc.msg {
			t.Fatalf("%s: %s=%q want=%q", tc.query, tc.field, got, tc.msg)
		}
	}
}
