// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// Detail はクライアントにそのまま返す人間向けのメッセージ。
type APIError struct {
	Code     string // エラーコード
	Detail   string // エラーメッセージ
	Category string // カテゴリ: auth, validation, system
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Detail)
}

// Is はエラーコードが一致するAPIErrorを同一とみなす。
// errors.Is(err, model.ErrInvalidCredentials) のように比較できる。
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// 定義済みエラーコード
const (
	ErrCodeDuplicateAccount   = "DUPLICATE_ACCOUNT"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

var (
	// ErrDuplicateAccount は登録済みのメールアドレスで再登録しようとした場合のエラー。
	ErrDuplicateAccount = NewDuplicateAccountError()

	// ErrInvalidCredentials はログイン失敗時のエラー。
	// 未登録メールアドレスとパスワード不一致を区別しない。
	ErrInvalidCredentials = NewInvalidCredentialsError()
)

// NewDuplicateAccountError はアカウント重複エラーを生成する。
func NewDuplicateAccountError() *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateAccount,
		Detail:   "Email already registered",
		Category: "auth",
	}
}

// NewInvalidCredentialsError は認証失敗エラーを生成する。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Detail:   "Invalid email or password",
		Category: "auth",
	}
}

// NewInvalidRequestError はリクエストボディの検証エラーを生成する。
func NewInvalidRequestError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Detail:   reason,
		Category: "validation",
	}
}

// NewInternalError は内部エラーを生成する。詳細はログにのみ記録する。
func NewInternalError() *APIError {
	return &APIError{
		Code:     ErrCodeInternal,
		Detail:   "Internal server error",
		Category: "system",
	}
}
