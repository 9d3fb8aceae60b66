// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/transport/middleware"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/shared/response"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたメールアドレスとパスワードで新規ユーザーを登録します。
	Register(ctx context.Context, email, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にユーザーとベアラートークンを返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// CurrentUser はトークンを解決し、所有者のユーザーを返します。
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
	// Logout は現在のリクエストのトークンを失効させます。
	Logout(ctx context.Context, token string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時は400を返却
// - 予期しない失敗時は詳細をログに残し、汎用メッセージで500を返却
// - 成功時は201でユーザーを返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, dto.ValidationMessage(err))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register failed: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			response.Error(c, http.StatusBadRequest, "Email is already taken. Please try again with another email address")
			return
		}
		// 内部エラーの詳細はクライアントに公開しない
		slog.Error("unable to register user", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusInternalServerError, "Unable to register user. Please try again!")
		return
	}

	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	response.Success(c, http.StatusCreated, "User has been registered successfully!", dto.NewUserResp(user))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は汎用メッセージで400を返却（アカウント列挙対策）
// - 認証成功時はユーザーとトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, dto.ValidationMessage(err))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// 「ユーザーが存在しない」と「パスワードが違う」を区別しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			response.Error(c, http.StatusBadRequest, "Invalid login credentials!")
			return
		}
		slog.Error("unable to login user", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusInternalServerError, "Unable to login user. Please try again!")
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	response.Success(c, http.StatusOK, "User logged in successfully!", dto.AuthUserResp{
		User:  dto.NewUserResp(user),
		Token: token,
	})
}

// Profile は認証済みユーザーのプロフィール取得エンドポイントを処理します。
// トークンはミドルウェアが抽出し、ユースケースには明示的に渡します。
func (h *AuthHandler) Profile(c *gin.Context) {
	token := middleware.TokenFromContext(c)

	user, err := h.auth.CurrentUser(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, usecase.ErrUnauthenticated) {
			response.Error(c, http.StatusUnauthorized, "Invalid token credentials!")
			return
		}
		slog.Error("unable to fetch user", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusInternalServerError, "Unable to fetch user. Please try again!")
		return
	}

	response.Success(c, http.StatusOK, "User profile fetched successfully!", dto.NewUserResp(user))
}

// Logout はログアウトエンドポイントを処理します。
// 現在のリクエストで提示されたトークンだけを失効させ、
// 同一ユーザーの他のトークンは有効なまま残します。
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.TokenFromContext(c)

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, usecase.ErrUnauthenticated) {
			// 失効済み・未発行のトークンでのログアウトは401（サーバーエラーではない）
			response.Error(c, http.StatusUnauthorized, "Invalid token credentials!")
			return
		}
		slog.Error("unable to logout user", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusInternalServerError, "Unable to logout user. Please try again!")
		return
	}

	slog.Info("user logout successful", "remote_addr", c.ClientIP())
	response.Success(c, http.StatusOK, "User logged out successfully!", nil)
}
