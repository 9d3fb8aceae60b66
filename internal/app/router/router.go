package router

import (
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authmw "auth_backend/internal/feature/auth/transport/middleware"
	"auth_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/register", authHandler.Register)
	// ログイン（ベアラートークン発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// authmw.BearerToken() ミドルウェアを適用
	// → リクエストヘッダーにベアラートークンが必要になる
	auth.Use(authmw.BearerToken())
	{
		auth.GET("/profile", authHandler.Profile)
		auth.POST("/logout", authHandler.Logout)
	}

	return r
}
