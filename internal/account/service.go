// Package account はアカウント登録とログインのドメインロジックを提供する。
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hitoshi/hexaware/internal/model"
	"github.com/hitoshi/hexaware/internal/password"
	"github.com/hitoshi/hexaware/internal/repository"
)

// PasswordHasher はパスワードのハッシュ化と検証のインターフェース。
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}

// EventRecorder はアカウント操作の結果を記録するインターフェース。
// metrics.Collectorが実装する。
type EventRecorder interface {
	RecordRegistration(outcome string)
	RecordLogin(outcome string)
}

// 操作結果のラベル
const (
	OutcomeSuccess            = "success"
	OutcomeDuplicate          = "duplicate"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)

// Service はアカウント管理のサービス層。
type Service struct {
	users    repository.UserRepository
	hasher   PasswordHasher
	recorder EventRecorder

	// dummyHash は未登録メールアドレスでのログイン時に比較対象として使う。
	// 未登録とパスワード不一致で処理時間に差が出ないようにする。
	dummyHash string
}

// NewService はServiceの新しいインスタンスを生成する。
// recorderがnilの場合は記録を行わない。
func NewService(users repository.UserRepository, hasher PasswordHasher, recorder EventRecorder) (*Service, error) {
	dummy, err := hasher.Hash("hexaware-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}
	return &Service{
		users:     users,
		hasher:    hasher,
		recorder:  recorder,
		dummyHash: dummy,
	}, nil
}

// Register は新しいアカウントを登録する。
// メールアドレスが登録済みの場合はmodel.ErrDuplicateAccountを返し、状態は変更しない。
// 事前の存在確認は高速化のためのもので、最終的な一意性はストアの一意制約が保証する。
func (s *Service) Register(ctx context.Context, name, email, plain string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.recordRegistration(OutcomeError)
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if existing != nil {
		s.recordRegistration(OutcomeDuplicate)
		return nil, model.ErrDuplicateAccount
	}

	hashed, err := s.hasher.Hash(plain)
	if errors.Is(err, password.ErrPasswordTooLong) {
		s.recordRegistration(OutcomeError)
		return nil, model.NewInvalidRequestError("Password must be at most 72 bytes")
	}
	if err != nil {
		s.recordRegistration(OutcomeError)
		return nil, fmt.Errorf("パスワードのハッシュ化に失敗しました: %w", err)
	}

	user := &model.User{
		Name:           name,
		Email:          email,
		HashedPassword: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.recordRegistration(OutcomeDuplicate)
			return nil, model.ErrDuplicateAccount
		}
		s.recordRegistration(OutcomeError)
		return nil, fmt.Errorf("ユーザーの作成に失敗しました: %w", err)
	}

	slog.Info("アカウントを登録しました",
		slog.String("user_id", user.ID),
	)
	s.recordRegistration(OutcomeSuccess)

	return user, nil
}

// Login はメールアドレスとパスワードでアカウントを確認する。
// 未登録メールアドレスとパスワード不一致はどちらもmodel.ErrInvalidCredentialsを返す。
func (s *Service) Login(ctx context.Context, email, plain string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.recordLogin(OutcomeError)
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}

	if user == nil {
		s.hasher.Verify(plain, s.dummyHash)
		s.recordLogin(OutcomeInvalidCredentials)
		return nil, model.ErrInvalidCredentials
	}

	if !s.hasher.Verify(plain, user.HashedPassword) {
		slog.Warn("ログインに失敗しました",
			slog.String("user_id", user.ID),
		)
		s.recordLogin(OutcomeInvalidCredentials)
		return nil, model.ErrInvalidCredentials
	}

	s.recordLogin(OutcomeSuccess)
	return user, nil
}

func (s *Service) recordRegistration(outcome string) {
	if s.recorder != nil {
		s.recorder.RecordRegistration(outcome)
	}
}

func (s *Service) recordLogin(outcome string) {
	if s.recorder != nil {
		s.recorder.RecordLogin(outcome)
	}
}
