// Package password はパスワードのソルト付きハッシュ化と検証を提供する。
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong はbcryptの入力上限（72バイト）を超えるパスワードを示す。
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// maxPasswordBytes はbcryptが扱える平文の最大バイト数。
const maxPasswordBytes = 72

// Hasher はbcryptによるパスワードハッシャー。
// ハッシュ文字列にはコスト、ソルト、ダイジェストがすべて含まれる。
type Hasher struct {
	cost int
}

// NewHasher は指定コストのHasherを生成する。
// bcryptの有効範囲外のコストはbcrypt.DefaultCostに置き換える。
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost は実際に使用するコストを返す。
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash は呼び出しごとに新しいソルトを生成してハッシュ化する。
// 同じ平文でも毎回異なる文字列が返る。
func (h *Hasher) Hash(plain string) (string, error) {
	if len(plain) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify は平文がハッシュと一致するかを定数時間で比較する。
// 形式不正のハッシュに対してはエラーではなくfalseを返す。
func (h *Hasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
