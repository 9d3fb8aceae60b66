package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"auth_backend/internal/app/di"
	"auth_backend/internal/app/router"
	authadapters "auth_backend/internal/feature/auth/adapters"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/config"
	platformdb "auth_backend/internal/platform/db"
	"auth_backend/internal/platform/password"
	platformredis "auth_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db, err := platformdb.Open(cfg.DB)
	if err != nil {
		log.Fatal(err)
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Host == "" {
		log.Println("[WARN] Redis not configured. Using MySQL token store.")
	} else if tmp, err := platformredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to MySQL token store:", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	tokenRepo := di.NewTokenRepository(rdb, db)

	// Usecase
	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenRepo, hasher)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	// ルータ生成
	router := router.NewRouter(authH)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
