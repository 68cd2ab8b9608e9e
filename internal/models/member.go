package models

// Member is the authorization target for every cart and coupon operation.
// ID is zero until the member is persisted.
type Member struct {
	ID       int64
	Name     string
	Password string
}

func (m Member) CheckPassword(raw string) bool {
	return m.Password == raw
}
