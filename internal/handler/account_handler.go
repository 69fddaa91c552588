package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/hexaware/internal/model"
)

// AccountServiceInterface はアカウントハンドラーが必要とするサービスインターフェース。
type AccountServiceInterface interface {
	// Register はアカウントを登録する。重複時はmodel.ErrDuplicateAccountを返す。
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	// Login は資格情報を確認する。失敗時は理由によらずmodel.ErrInvalidCredentialsを返す。
	Login(ctx context.Context, email, password string) (*model.User, error)
}

// AccountHandler はアカウント登録・ログインのHTTPハンドラー。
type AccountHandler struct {
	service AccountServiceInterface
}

// NewAccountHandler はAccountHandlerを生成する。
func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{
		service: service,
	}
}

// Register は新規アカウントを登録する。
// POST /register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		handleServiceError(w, r, err)
		return
	}

	user, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, accountResponse{
		Message: "User registered successfully",
		User:    user.Public(),
	})
}

// Login はメールアドレスとパスワードでログインする。
// POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		handleServiceError(w, r, err)
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, accountResponse{
		Message: "Login successful",
		User:    user.Public(),
	})
}
