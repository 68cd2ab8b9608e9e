package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mallkit/cart-service/internal/api/middleware"
	"github.com/mallkit/cart-service/internal/models"
)

type CartItemService interface {
	FindByMember(ctx context.Context, member models.Member) ([]models.CartItem, error)
	Add(ctx context.Context, member models.Member, productID int64) (int64, error)
	UpdateQuantity(ctx context.Context, member models.Member, cartItemID int64, quantity int) error
	Remove(ctx context.Context, member models.Member, cartItemID int64) error
	RemoveItems(ctx context.Context, member models.Member, ids []int64) error
}

type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type CartItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type ProductResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	ImageURL string `json:"image_url"`
}

type CartItemResponse struct {
	ID       int64           `json:"id"`
	Quantity int             `json:"quantity"`
	Product  ProductResponse `json:"product"`
}

func toCartItemResponse(item models.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:       item.ID,
		Quantity: item.Quantity,
		Product: ProductResponse{
			ID:       item.Product.ID,
			Name:     item.Product.Name,
			Price:    item.Product.Price,
			ImageURL: item.Product.ImageURL,
		},
	}
}

type CartHandler struct {
	cartItems CartItemService
}

func NewCartHandler(cartItems CartItemService) *CartHandler {
	return &CartHandler{cartItems: cartItems}
}

// List handles GET /cart-items
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFrom(r.Context())
	if !ok {
		writeError(w, models.ErrAuthentication)
		return
	}

	items, err := h.cartItems.FindByMember(r.Context(), member)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toCartItemResponse(item))
	}
	writeJSON(w, http.StatusOK, out)
}

// Add handles POST /cart-items
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFrom(r.Context())
	if !ok {
		writeError(w, models.ErrAuthentication)
		return
	}

	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid body")
		return
	}

	id, err := h.cartItems.Add(r.Context(), member, req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// UpdateQuantity handles PATCH /cart-items/{id}; quantity 0 removes the item.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFrom(r.Context())
	if !ok {
		writeError(w, models.ErrAuthentication)
		return
	}

	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid cart item id")
		return
	}

	var req CartItemQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid body")
		return
	}

	if err := h.cartItems.UpdateQuantity(r.Context(), member, id, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

// Remove handles DELETE /cart-items/{id}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFrom(r.Context())
	if !ok {
		writeError(w, models.ErrAuthentication)
		return
	}

	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid cart item id")
		return
	}

	if err := h.cartItems.Remove(r.Context(), member, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// RemoveBulk handles DELETE /cart-items?ids=1,2,3 — all listed items are
// deleted or none are.
func (h *CartHandler) RemoveBulk(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFrom(r.Context())
	if !ok {
		writeError(w, models.ErrAuthentication)
		return
	}

	ids, err := parseIDList(r.URL.Query().Get("ids"))
	if err != nil || len(ids) == 0 {
		badRequest(w, "ids query parameter required")
		return
	}

	if err := h.cartItems.RemoveItems(r.Context(), member, ids); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
