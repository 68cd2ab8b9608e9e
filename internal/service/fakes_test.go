package service

import (
	"context"
	"sort"

	"github.com/mallkit/cart-service/internal/models"
)

// In-memory stand-ins for the storage collaborators.

type fakeProductRepo struct {
	nextID   int64
	products map[int64]models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]models.Product)}
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64, includeDeleted bool) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok || (p.IsDeleted && !includeDeleted) {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) GetAll(_ context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if !p.IsDeleted {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product models.Product) (int64, error) {
	f.nextID++
	product.ID = f.nextID
	f.products[product.ID] = product
	return product.ID, nil
}

func (f *fakeProductRepo) SoftDelete(_ context.Context, id int64) error {
	p, ok := f.products[id]
	if ok {
		p.IsDeleted = true
		f.products[id] = p
	}
	return nil
}

type fakeCartItemRepo struct {
	nextID   int64
	items    map[int64]models.CartItem
	products *fakeProductRepo
}

func newFakeCartItemRepo(products *fakeProductRepo) *fakeCartItemRepo {
	return &fakeCartItemRepo{
		items:    make(map[int64]models.CartItem),
		products: products,
	}
}

func (f *fakeCartItemRepo) productLive(productID int64) bool {
	p, ok := f.products.products[productID]
	return ok && !p.IsDeleted
}

func (f *fakeCartItemRepo) GetByID(_ context.Context, id int64) (*models.CartItem, error) {
	item, ok := f.items[id]
	if !ok || !f.productLive(item.Product.ID) {
		return nil, nil
	}
	// mirror the storage join: the product fields come from the product row
	item.Product = f.products.products[item.Product.ID]
	return &item, nil
}

func (f *fakeCartItemRepo) FindByMemberID(_ context.Context, memberID int64) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range f.items {
		if item.Member.ID == memberID && f.productLive(item.Product.ID) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCartItemRepo) CountByIDsAndMemberID(_ context.Context, memberID int64, ids []int64) (int, error) {
	count := 0
	for _, id := range ids {
		item, ok := f.items[id]
		if ok && item.Member.ID == memberID && f.productLive(item.Product.ID) {
			count++
		}
	}
	return count, nil
}

func (f *fakeCartItemRepo) Create(_ context.Context, item models.CartItem) (int64, error) {
	f.nextID++
	item.ID = f.nextID
	f.items[item.ID] = item
	return item.ID, nil
}

func (f *fakeCartItemRepo) UpdateQuantity(_ context.Context, item models.CartItem) error {
	stored, ok := f.items[item.ID]
	if ok {
		stored.Quantity = item.Quantity
		f.items[item.ID] = stored
	}
	return nil
}

func (f *fakeCartItemRepo) DeleteByID(_ context.Context, id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCartItemRepo) DeleteByIDsAndMemberID(_ context.Context, memberID int64, ids []int64) error {
	for _, id := range ids {
		if item, ok := f.items[id]; ok && item.Member.ID == memberID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeCartItemRepo) DeleteByProductIDs(_ context.Context, productIDs []int64) error {
	for id, item := range f.items {
		for _, pid := range productIDs {
			if item.Product.ID == pid {
				delete(f.items, id)
			}
		}
	}
	return nil
}

type fakeCouponRepo struct {
	coupons map[int64]models.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[int64]models.Coupon)}
}

func (f *fakeCouponRepo) GetByID(_ context.Context, id int64) (*models.Coupon, error) {
	c, ok := f.coupons[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

type fakeMemberCouponRepo struct {
	nextID int64
	byID   map[int64]models.MemberCoupon
}

func newFakeMemberCouponRepo() *fakeMemberCouponRepo {
	return &fakeMemberCouponRepo{byID: make(map[int64]models.MemberCoupon)}
}

func (f *fakeMemberCouponRepo) GetByMemberAndCoupon(_ context.Context, memberID, couponID int64) (*models.MemberCoupon, error) {
	for _, mc := range f.byID {
		if mc.Member.ID == memberID && mc.Coupon.ID == couponID {
			return &mc, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberCouponRepo) FindAllByMemberID(_ context.Context, memberID int64) ([]models.MemberCoupon, error) {
	var out []models.MemberCoupon
	for _, mc := range f.byID {
		if mc.Member.ID == memberID {
			out = append(out, mc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMemberCouponRepo) ExistsByMemberAndCoupon(_ context.Context, memberID, couponID int64) (bool, error) {
	mc, _ := f.GetByMemberAndCoupon(context.Background(), memberID, couponID)
	return mc != nil, nil
}

func (f *fakeMemberCouponRepo) Create(_ context.Context, mc models.MemberCoupon) (int64, error) {
	f.nextID++
	mc.ID = f.nextID
	f.byID[mc.ID] = mc
	return mc.ID, nil
}

func (f *fakeMemberCouponRepo) Update(_ context.Context, mc models.MemberCoupon) error {
	f.byID[mc.ID] = mc
	return nil
}

type fakeMemberRepo struct {
	nextID  int64
	members map[int64]models.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[int64]models.Member)}
}

func (f *fakeMemberRepo) GetByName(_ context.Context, name string) (*models.Member, error) {
	for _, m := range f.members {
		if m.Name == name {
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	m, _ := f.GetByName(ctx, name)
	return m != nil, nil
}

func (f *fakeMemberRepo) Create(_ context.Context, member models.Member) (int64, error) {
	f.nextID++
	member.ID = f.nextID
	f.members[member.ID] = member
	return member.ID, nil
}
