package cartControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopworks/storefront-api/models"
)

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAddCartItem(t *testing.T) {
	db := openTestDB(t)
	user := mustCreateUser(t, db, "alice")
	product := mustCreateProduct(t, db, "Product X", "10.00")
	r := newCartRouter(t, db, user.ID)

	rec := doJSON(r, http.MethodPost, "/user/cart", fmt.Sprintf(`{"product_id": %d, "quantity": 2}`, product.ID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got=%d body=%s", rec.Code, rec.Body.String())
	}

	var got map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["product_title"] != "Product X" || got["total_price"] != "20.00" {
		t.Fatalf("unexpected response: %v", got)
	}
}

func TestAddCartItemDuplicateRejected(t *testing.T) {
	db := openTestDB(t)
	user := mustCreateUser(t, db, "alice")
	product := mustCreateProduct(t, db, "Product X", "10.00")
	mustAddCartItem(t, db, user.ID, product.ID, 1)
	r := newCartRouter(t, db, user.ID)

	rec := doJSON(r, http.MethodPost, "/user/cart", fmt.Sprintf(`{"product_id": %d, "quantity": 3}`, product.ID))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got=%d want=%d body=%s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}

	// the existing line must be untouched
	var item models.CartItem
	if err := db.Where("user_id = ? AND product_id = ?", user.ID, product.ID).First(&item).Error; err != nil {
		t.Fatalf("fetch item: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("quantity after rejected re-add: got=%d want=1", item.Quantity)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	db := openTestDB(t)
	user := mustCreateUser(t, db, "alice")
	r := newCartRouter(t, db, user.ID)

	rec := doJSON(r, http.MethodPost, "/user/cart", `{"product_id": 999, "quantity": 1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestUpdateCartItemQuantity(t *testing.T) {
	db := openTestDB(t)
	user := mustCreateUser(t, db, "alice")
	product := mustCreateProduct(t, db, "Product X", "10.00")
	item := mustAddCartItem(t, db, user.ID, product.ID, 1)
	r := newCartRouter(t, db, user.ID)

	rec := doJSON(r, http.MethodPut, fmt.Sprintf("/user/cart/%d", item.ID), `{"quantity": 5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d body=%s", rec.Code, rec.Body.String())
	}

	var got map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["quantity"] != float64(5) || got["total_price"] != "50.00" {
		t.Fatalf("unexpected response: %v", got)
	}
}

func TestCartOwnershipEnforced(t *testing.T) {
	db := openTestDB(t)
	owner := mustCreateUser(t, db, "alice")
	intruder := mustCreateUser(t, db, "bob")
	product := mustCreateProduct(t, db, "Product X", "10.00")
	item := mustAddCartItem(t, db, owner.ID, product.ID, 1)

	r := newCartRouter(t, db, intruder.ID)

	rec := doJSON(r, http.MethodDelete, fmt.Sprintf("/user/cart/%d", item.ID), "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("delete status: got=%d want=%d body=%s", rec.Code, http.StatusForbidden, rec.Body.String())
	}
	rec = doJSON(r, http.MethodPut, fmt.Sprintf("/user/cart/%d", item.ID), `{"quantity": 9}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("update status: got=%d want=%d body=%s", rec.Code, http.StatusForbidden, rec.Body.String())
	}

	if n := countRows(t, db, &models.CartItem{}); n != 1 {
		t.Fatalf("cart items: got=%d want=1", n)
	}
}

func TestDeleteCartItem(t *testing.T) {
	db := openTestDB(t)
	user := mustCreateUser(t, db, "alice")
	product := mustCreateProduct(t, db, "Product X", "10.00")
	item := mustAddCartItem(t, db, user.ID, product.ID, 1)
	r := newCartRouter(t, db, user.ID)

	rec := doJSON(r, http.MethodDelete, fmt.Sprintf("/user/cart/%d", item.ID), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	if n := countRows(t, db, &models.CartItem{}); n != 0 {
		t.Fatalf("cart items: got=%d want=0", n)
	}

	rec = doJSON(r, http.MethodDelete, fmt.Sprintf("/user/cart/%d", item.ID), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete status: got=%d want=%d", rec.Code, http.StatusNotFound)
	}
}

func TestCartTotalPrice(t *testing.T) {
	db := openTestDB(t)
	user := mustCreateUser(t, db, "alice")
	r := newCartRouter(t, db, user.ID)

	// empty cart totals zero
	rec := doJSON(r, http.MethodGet, "/user/cart/total_price", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["total_price"] != "0.00" {
		t.Fatalf("empty cart total: got=%q want=%q", got["total_price"], "0.00")
	}

	p1 := mustCreateProduct(t, db, "Product X", "10.00")
	p2 := mustCreateProduct(t, db, "Product Y", "3.25")
	mustAddCartItem(t, db, user.ID, p1.ID, 2)
	mustAddCartItem(t, db, user.ID, p2.ID, 3)

	rec = doJSON(r, http.MethodGet, "/user/cart/total_price", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 2*10.00 + 3*3.25
	if got["total_price"] != "29.75" {
		t.Fatalf("cart total: got=%q want=%q", got["total_price"], "29.75")
	}
}

func TestGetCartItemsScopedToUser(t *testing.T) {
	db := openTestDB(t)
	alice := mustCreateUser(t, db, "alice")
	bob := mustCreateUser(t, db, "bob")
	product := mustCreateProduct(t, db, "Product X", "10.00")
	other := mustCreateProduct(t, db, "Product Y", "4.00")
	mustAddCartItem(t, db, alice.ID, product.ID, 1)
	mustAddCartItem(t, db, bob.ID, other.ID, 7)

	r := newCartRouter(t, db, alice.ID)
	rec := doJSON(r, http.MethodGet, "/user/cart", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d body=%s", rec.Code, rec.Body.String())
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("item count: got=%d want=1", len(items))
	}
	if items[0]["product_title"] != "Product X" {
		t.Fatalf("unexpected item: %v", items[0])
	}
}
