package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/akhileshms120/irblibrary/internal/app/di"
	"github.com/akhileshms120/irblibrary/internal/app/router"
	authadapters "github.com/akhileshms120/irblibrary/internal/feature/auth/adapters"
	authhandler "github.com/akhileshms120/irblibrary/internal/feature/auth/transport/handler"
	authusecase "github.com/akhileshms120/irblibrary/internal/feature/auth/usecase"
	borrowingadapters "github.com/akhileshms120/irblibrary/internal/feature/borrowing/adapters"
	borrowinghandler "github.com/akhileshms120/irblibrary/internal/feature/borrowing/transport/handler"
	borrowingusecase "github.com/akhileshms120/irblibrary/internal/feature/borrowing/usecase"
	catalogadapters "github.com/akhileshms120/irblibrary/internal/feature/catalog/adapters"
	cataloghandler "github.com/akhileshms120/irblibrary/internal/feature/catalog/transport/handler"
	catalogusecase "github.com/akhileshms120/irblibrary/internal/feature/catalog/usecase"
	"github.com/akhileshms120/irblibrary/internal/platform/cache"
	infradb "github.com/akhileshms120/irblibrary/internal/platform/db"
	jwtmw "github.com/akhileshms120/irblibrary/internal/platform/jwt"
	infraredis "github.com/akhileshms120/irblibrary/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()
	infradb.ProbeConnection(db)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions fall back to the database; suggestions go uncached.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(db)
	profileRepo := authadapters.NewProfileRepository(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	borrowingRepo := borrowingadapters.NewBorrowingRepository(db)
	catalogRepo := catalogadapters.NewCatalogRepository(db)

	// Suggestion lookups are cached briefly; the catalog is read-only so
	// stale entries only delay new titles, never corrupt loan data.
	cachedCatalogRepo := cache.NewCachingCatalogRepository(rdb, 5*time.Minute, catalogRepo, "catalog")

	// Usecases
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	events := authusecase.NewSessionBroadcaster()
	authUC := authusecase.NewAuthUsecase(userRepo, profileRepo, sessionRepo, jwtGen, events)
	borrowingUC := borrowingusecase.NewBorrowingUsecase(borrowingRepo)
	catalogUC := catalogusecase.NewCatalogUsecase(cachedCatalogRepo)

	events.Subscribe(func(e authusecase.SessionEvent) {
		slog.Info("session state changed", "kind", string(e.Kind), "email", e.Session.Email)
	})

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	borrowingH := borrowinghandler.NewBorrowingHandler(borrowingUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)

	r := router.NewRouter(authH, borrowingH, catalogH, authUC)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
