package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"identity_backend/internal/app/di"
	"identity_backend/internal/app/router"
	authadapters "identity_backend/internal/feature/auth/adapters"
	authhandler "identity_backend/internal/feature/auth/transport/handler"
	authusecase "identity_backend/internal/feature/auth/usecase"
	settingshandler "identity_backend/internal/feature/settings/transport/handler"
	settingsusecase "identity_backend/internal/feature/settings/usecase"
	"identity_backend/internal/platform/config"
	"identity_backend/internal/platform/db"
	"identity_backend/internal/platform/password"
	infraredis "identity_backend/internal/platform/redis"
	"identity_backend/internal/platform/token"
)

func main() {
	// Config: a missing signing secret is fatal here, never a runtime 500.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	conn := db.Open(cfg.DatabaseURL)

	// Redis is optional; without it logout is cookie deletion only.
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := infraredis.NewClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without token revocation.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}
	sessionRevoker, revocationChecker := di.NewDenylist(rdb)

	// Platform services
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := password.NewBcryptHasher(0)

	// Repository
	userRepo := authadapters.NewUserGorm(conn)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens)
	settingsUC := settingsusecase.NewSettingsUsecase(userRepo)

	// Handler
	cookies := authhandler.CookieConfig{
		MaxAge: int(cfg.TokenTTL.Seconds()),
		Secure: cfg.CookieSecure,
	}
	authH := authhandler.NewAuthHandler(authUC, tokens, sessionRevoker, cookies)
	settingsH := settingshandler.NewSettingsHandler(settingsUC)

	r := router.New(authH, settingsH, tokens, revocationChecker)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
