package cache

import (
	"sync"

	"github.com/mallkit/cart-service/internal/models"
)

// CouponCache holds immutable coupon reference data so issuance and
// redemption don't hit storage for every lookup.
type CouponCache struct {
	mu    sync.RWMutex
	store map[int64]models.Coupon
}

func NewCouponCache() *CouponCache {
	return &CouponCache{
		store: make(map[int64]models.Coupon),
	}
}

func (c *CouponCache) Get(id int64) (models.Coupon, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	coupon, ok := c.store[id]
	return coupon, ok
}

func (c *CouponCache) Set(coupon models.Coupon) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[coupon.ID] = coupon
}
