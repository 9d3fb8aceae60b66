// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"auth_backend/internal/feature/auth/domain/entity"
)

const (
	// tokenBytes はトークン生成に使用するランダムバイト数を定義します。
	// 32バイト（256ビット）を16進数エンコードし、64文字のトークンになります。
	tokenBytes = 32
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// PasswordHasher はパスワードのハッシュ化と検証を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/password）ではなくコンシューマー（usecase）が定義します。
type PasswordHasher interface {
	// Hash は平文パスワードからソルト付きハッシュを生成します。
	// 同じ入力でも呼び出しごとに異なるハッシュを返します（ランダムソルト）。
	Hash(plaintext string) (string, error)

	// Verify は平文パスワードがハッシュと一致するか検証します。
	// 不正な形式のハッシュでもエラーを投げず、falseを返します。
	Verify(plaintext, hash string) bool
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens TokenRepository
	hasher PasswordHasher
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenRepository, hasher PasswordHasher) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

// generateTokenID は暗号論的乱数から64文字の16進トークン値を生成します。
func generateTokenID() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// メールアドレスは大文字小文字を区別しないよう小文字に正規化されます。
// 成功時は作成されたユーザーを返します（パスワードハッシュはクライアントに公開しないこと）。
func (u *authUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: strings.ToLower(email), Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時に新しいベアラートークンを発行します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもハッシュ検証を実行します。
// ログインごとに新しいトークンを発行し、既存のトークンは無効化しません。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// hasher.Verifyが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	ok := u.hasher.Verify(password, passwordHash)

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	// 「ユーザーが存在しない」と「パスワードが違う」を区別しない（アカウント列挙対策）
	if err != nil || !ok {
		return nil, "", ErrInvalidCredentials
	}

	id, err := generateTokenID()
	if err != nil {
		return nil, "", err
	}

	token := &entity.AuthToken{
		ID:        id,
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := u.tokens.Create(ctx, token); err != nil {
		return nil, "", fmt.Errorf("failed to persist token: %w", err)
	}

	return user, token.ID, nil
}

// CurrentUser はベアラートークンを解決し、所有者のユーザーを返します。
// トークンが存在しない・失効済みの場合はErrUnauthenticatedを返します。
func (u *authUsecase) CurrentUser(ctx context.Context, tokenID string) (*entity.User, error) {
	token, err := u.resolve(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// トークンは有効だが所有者が存在しない場合も未認証として扱う
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up token owner: %w", err)
	}
	return user, nil
}

// Logout は現在のリクエストで使用された単一のトークンを失効させます。
// ユーザーの他のトークンには影響しません。
func (u *authUsecase) Logout(ctx context.Context, tokenID string) error {
	if _, err := u.resolve(ctx, tokenID); err != nil {
		return err
	}

	if err := u.tokens.Revoke(ctx, tokenID); err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return ErrUnauthenticated
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// resolve はトークン値を検証し、有効なトークンエンティティを返します。
func (u *authUsecase) resolve(ctx context.Context, tokenID string) (*entity.AuthToken, error) {
	if tokenID == "" {
		return nil, ErrUnauthenticated
	}

	token, err := u.tokens.FindByID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}
	if !token.IsValid() {
		return nil, ErrUnauthenticated
	}
	return token, nil
}
