package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mallkit/cart-service/internal/models"
)

type MemberStore interface {
	GetByName(ctx context.Context, name string) (*models.Member, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, member models.Member) (int64, error)
}

type MemberService struct {
	members MemberStore
}

func NewMemberService(members MemberStore) *MemberService {
	return &MemberService{members: members}
}

func (s *MemberService) Register(ctx context.Context, name, password string) (int64, error) {
	taken, err := s.members.ExistsByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("check member name: %w", err)
	}
	if taken {
		return 0, models.ErrNameTaken
	}

	id, err := s.members.Create(ctx, models.Member{Name: name, Password: password})
	if err != nil {
		return 0, fmt.Errorf("create member: %w", err)
	}
	return id, nil
}

// Login verifies credentials and returns the basic token the client replays
// in the Authorization header on later requests.
func (s *MemberService) Login(ctx context.Context, name, password string) (string, error) {
	member, err := s.members.GetByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("load member: %w", err)
	}
	if member == nil || !member.CheckPassword(password) {
		return "", models.ErrAuthentication
	}

	token := base64.StdEncoding.EncodeToString([]byte(name + ":" + password))
	return token, nil
}
