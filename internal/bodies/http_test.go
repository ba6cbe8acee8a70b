package bodies_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"WebBasics/internal/bodies"
	"WebBasics/pkg/kit"
)

func send(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := bodies.NewHandler(&bodies.Server{Log: zap.NewNop()}, kit.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "bodies",
	})

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode: %v body=%s", err, rr.Body.String())
	}
	return m
}

func fieldErrors(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var er struct {
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return er.Details
}

func TestCreateItem_WithTax(t *testing.T) {
	rr := send(t, http.MethodPost, "/body/items", `{"name":"pen","price":10.5,"tax":0.2}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	m := decodeMap(t, rr)
	if m["name"] != "pen" || m["price"] != 10.5 || m["tax"] != 0.2 {
		t.Fatalf("body=%v", m)
	}
	if m["total_price"] != 12.6 {
		t.Fatalf("total_price=%v want=12.6", m["total_price"])
	}
	if v, ok := m["description"]; !ok || v != nil {
		t.Fatalf("description must be echoed as null, got %v (present=%v)", v, ok)
	}
}

func TestCreateItem_NoTax(t *testing.T) {
	for _, body := range []string{`{"name":"pen","price":3}`, `{"name":"pen","price":3,"tax":0}`} {
		m := decodeMap(t, send(t, http.MethodPost, "/body/items", body))
		if _, ok := m["total_price"]; ok {
			t.Fatalf("%s: unexpected total_price in %v", body, m)
		}
	}
}

func TestCreateItem_Invalid(t *testing.T) {
	if rr := send(t, http.MethodPost, "/body/items", `{"name":`); rr.Code != http.StatusBadRequest {
		t.Fatalf("malformed status=%d", rr.Code)
	}
	if rr := send(t, http.MethodPost, "/body/items", `{"name":"a","price":1,"colour":"red"}`); rr.Code != http.StatusBadRequest {
		t.Fatalf("unknown field status=%d", rr.Code)
	}
	if rr := send(t, http.MethodPost, "/body/items", `{"name":"a","price":1}{}`); rr.Code != http.StatusBadRequest {
		t.Fatalf("trailing data status=%d", rr.Code)
	}

	errs := fieldErrors(t, send(t, http.MethodPost, "/body/items", `{"description":"x"}`))
	if errs["name"] == "" || errs["price"] == "" {
		t.Fatalf("errors=%v", errs)
	}
}

func TestUpdateItem(t *testing.T) {
	rr := send(t, http.MethodPut, "/body/items/9", `{"name":"pen","price":2,"tax":0.1}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	m := decodeMap(t, rr)
	if m["item_id"] != float64(9) || m["name"] != "pen" {
		t.Fatalf("body=%v", m)
	}
	if _, ok := m["total_price"]; ok {
		t.Fatalf("update must not compute total_price: %v", m)
	}

	if rr := send(t, http.MethodPut, "/body/items/nine", `{"name":"pen","price":2}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d", rr.Code)
	}
}

func TestUpdateItemUser(t *testing.T) {
	body := `{
		"item": {"name":"pen","description":"blue","price":2.5},
		"user": {"username":"ada","first_name":"Ada","last_name":"Lovelace"},
		"age": 36
	}`
	rr := send(t, http.MethodPut, "/multi/items/0/users/5000", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	m := decodeMap(t, rr)
	if m["item_id"] != float64(0) || m["user_id"] != float64(5000) || m["age"] != float64(36) {
		t.Fatalf("body=%v", m)
	}
	user, _ := m["user"].(map[string]any)
	if user["username"] != "ada" || user["email"] != nil {
		t.Fatalf("user=%v", user)
	}
}

func TestUpdateItemUser_OptionalParts(t *testing.T) {
	m := decodeMap(t, send(t, http.MethodPut, "/multi/items/1/users/1", `{"age":1}`))
	if m["item"] != nil || m["user"] != nil {
		t.Fatalf("body=%v", m)
	}
}

func TestUpdateItemUser_Rejects(t *testing.T) {
	cases := []struct {
		path, body, field string
	}{
		{"/multi/items/101/users/1", `{"age":3}`, "item_id"},
		{"/multi/items/1/users/0", `{"age":3}`, "user_id"},
		{"/multi/items/1/users/1", `{}`, "age"},
		{"/multi/items/1/users/1", `{"age":150}`, "age"},
		{"/multi/items/1/users/1", `{"age":0}`, "age"},
		{"/multi/items/1/users/1", `{"age":3,"item":{"name":"pen","price":1}}`, "item.description"},
		{"/multi/items/1/users/1", `{"age":3,"user":{"username":"ada","first_name":"Ada"}}`, "user.last_name"},
	}

	for _, tc := range cases {
		errs := fieldErrors(t, send(t, http.MethodPut, tc.path, tc.body))
		if errs[tc.field] == "" {
			t.Fatalf("%s %s: errors=%v want field %s", tc.path, tc.body, errs, tc.field)
		}
	}
}

func TestUpdateConstrainedItem(t *testing.T) {
	rr := send(t, http.MethodPut, "/fields/items/3", `{"item":{"name":"pen","price":1.25}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	m := decodeMap(t, rr)
	item, _ := m["item"].(map[string]any)
	if m["item_id"] != float64(3) || item["price"] != 1.25 {
		t.Fatalf("body=%v", m)
	}

	long := strings.Repeat("x", 301)
	cases := []struct {
		path, body, field, msg string
	}{
		{"/fields/items/0", `{"item":{"name":"pen","price":1}}`, "item_id", "Must be greater than or equal to 1"},
		{"/fields/items/1", `{}`, "item", "This field is required"},
		{"/fields/items/1", `{"item":{"name":"pen","price":0}}`, "item.price", "Must be greater than 0"},
		{"/fields/items/1", `{"item":{"name":"pen","price":1,"description":"` + long + `"}}`, "item.description", "Maximum length is 300"},
	}
	for _, tc := range cases {
		errs := fieldErrors(t, send(t, http.MethodPut, tc.path, tc.body))
		if errs[tc.field] != tc.msg {
			t.Fatalf("%s: %s=%q want=%q", tc.path, tc.field, errs[tc.field], tc.msg)
		}
	}
}

func TestNestedItem(t *testing.T) {
	body := `{"name":"lamp","price":20,"image":{"url":"https://img.example.com/lamp.png"}}`
	rr := send(t, http.MethodPut, "/nested/products/4", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	m := decodeMap(t, rr)
	item, _ := m["item"].(map[string]any)
	image, _ := item["image"].(map[string]any)
	if m["item_id"] != float64(4) || image["url"] != "https://img.example.com/lamp.png" {
		t.Fatalf("body=%v", m)
	}

	errs := fieldErrors(t, send(t, http.MethodPut, "/nested/products/4", `{"name":"lamp","price":20,"image":{"url":"not a url"}}`))
	if errs["image.url"] != "Must be a valid URL" {
		t.Fatalf("errors=%v", errs)
	}

	errs = fieldErrors(t, send(t, http.MethodPut, "/nested/products/0", body))
	if errs["item_id"] == "" {
		t.Fatalf("errors=%v", errs)
	}
}

func TestCreateProduct(t *testing.T) {
	body := `{
		"image": {"url":"http://example.com/p.jpg","description":"front"},
		"item": {"name":"lamp","price":20,"image":{"url":"http://example.com/i.jpg"}}
	}`
	rr := send(t, http.MethodPost, "/nested/products/12", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	var got struct {
		ProductID int            `json:"product_id"`
		Product   bodies.Product `json:"product"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ProductID != 12 || got.Product.Item.Name != "lamp" || *got.Product.Image.Description != "front" {
		t.Fatalf("got=%+v", got)
	}

	errs := fieldErrors(t, send(t, http.MethodPost, "/nested/products/12", `{"image":{"url":"http://example.com/p.jpg"}}`))
	if errs["item"] != "This field is required" {
		t.Fatalf("errors=%v", errs)
	}

	errs = fieldErrors(t, send(t, http.MethodPost, "/nested/products/-1", body))
	if errs["product_id"] == "" {
		t.Fatalf("errors=%v", errs)
	}
}

func TestItem_TotalPrice(t *testing.T) {
	price, tax := 100.0, 0.07
	total, ok := bodies.Item{Name: "x", Price: &price, Tax: &tax}.TotalPrice()
	if !ok || total != 107 {
		t.Fatalf("total=%v ok=%v", total, ok)
	}

	if _, ok := (bodies.Item{Name: "x", Price: &price}).TotalPrice(); ok {
		t.Fatalf("no tax must not yield a total")
	}
}
