package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelcore/internal/database"
	"hotelcore/internal/middleware"
	"hotelcore/internal/modules/auth"
	"hotelcore/internal/modules/blocking"
	"hotelcore/internal/modules/catalog"
	"hotelcore/internal/modules/dashboard"
	"hotelcore/internal/modules/rooms"
	jwtsvc "hotelcore/internal/pkg/jwt"
	"hotelcore/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelcore.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	blockingRepo := repository.NewBlockingRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	floorRepo := repository.NewFloorRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := dashboard.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	roomService := rooms.NewService(roomRepo, historyRepo, blockingRepo, floorRepo, hub)
	roomHandler := rooms.NewHandler(roomService)

	catalogService := catalog.NewService(roomTypeRepo, floorRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	blockingService := blocking.NewService(blockingRepo, roomRepo)
	blockingHandler := blocking.NewHandler(blockingService)

	dashboardService := dashboard.NewService(roomRepo, blockingRepo, roomTypeRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService, hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	// websocket endpoint authenticates via ?token=, outside the auth group
	dashboardHandler.RegisterWS(r)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			roomHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			blockingHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)

			manager := protected.Group("/")
			manager.Use(middleware.ManagerOnly())
			{
				roomHandler.RegisterManagerRoutes(manager)
				catalogHandler.RegisterManagerRoutes(manager)
			}
		}
	}

	log.Printf("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
