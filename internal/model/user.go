// Package model はドメインモデルを定義する。
package model

import "time"

// User はアカウント登録済みのユーザーを表す。
// HashedPassword はpasswordパッケージが生成したハッシュで、平文は保持しない。
type User struct {
	ID             string
	Name           string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}

// PublicUser はレスポンスとして外部に公開してよいユーザー情報。
// パスワードやハッシュは含めない。
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public はユーザーの公開フィールドのみを返す。
func (u *User) Public() PublicUser {
	return PublicUser{
		Name:  u.Name,
		Email: u.Email,
	}
}
