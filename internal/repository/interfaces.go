// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"errors"

	"github.com/hitoshi/hexaware/internal/model"
)

// ErrDuplicateEmail は同一メールアドレスのユーザーが既に存在することを示す。
// usersテーブルの一意制約違反から変換される。
var ErrDuplicateEmail = errors.New("repository: email already exists")

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByEmail はメールアドレスが完全一致するユーザーを取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// Create はユーザーを作成する。IDと作成日時はストア側で採番し、userに書き戻す。
	// メールアドレスが重複する場合はErrDuplicateEmailを返す。
	Create(ctx context.Context, user *model.User) error
}
