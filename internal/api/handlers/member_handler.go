package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

type MemberService interface {
	Register(ctx context.Context, name, password string) (int64, error)
	Login(ctx context.Context, name, password string) (string, error)
}

type MemberRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type MemberHandler struct {
	members MemberService
}

func NewMemberHandler(members MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// Join handles POST /users/join
func (h *MemberHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid body")
		return
	}
	if req.Name == "" || req.Password == "" {
		badRequest(w, "name and password required")
		return
	}

	id, err := h.members.Register(r.Context(), req.Name, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// Login handles POST /users/login
func (h *MemberHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid body")
		return
	}

	token, err := h.members.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}
