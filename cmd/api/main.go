package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "pawhome-backend/internal/adapter/http"
	"pawhome-backend/internal/adapter/middleware"
	"pawhome-backend/internal/adapter/repository/mysql"
	"pawhome-backend/internal/auth"
	"pawhome-backend/internal/config"
	appDomain "pawhome-backend/internal/domain/application"
	petDomain "pawhome-backend/internal/domain/pet"
	userDomain "pawhome-backend/internal/domain/user"
	"pawhome-backend/internal/infrastructure/cache"
	"pawhome-backend/internal/infrastructure/db"
	appuc "pawhome-backend/internal/usecase/application"
	authuc "pawhome-backend/internal/usecase/auth"
	petuc "pawhome-backend/internal/usecase/pet"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&petDomain.Pet{}, &appDomain.Application{}, &userDomain.User{}); err != nil {
		log.Fatal(err)
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	petRepo := mysql.NewPetRepository(gdb)
	appRepo := mysql.NewApplicationRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	txn := mysql.NewGormUoW(gdb)

	pets := petuc.NewUsecase(petRepo)
	apps := appuc.NewUsecase(petRepo, appRepo, txn)
	accounts := authuc.NewUsecase(userRepo, tokens)

	h := httpadp.NewHandler()
	petH := httpadp.NewPetHandler(pets)
	appH := httpadp.NewApplicationHandler(apps)
	authH := httpadp.NewAuthHandler(accounts)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.RequestID(), echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	authn := middleware.Authenticate(tokens)
	adminOnly := middleware.RequireRole(userDomain.RoleAdmin)
	anyRole := middleware.RequireRole(userDomain.RoleUser, userDomain.RoleAdmin)

	api := e.Group("/api/v1")

	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)
	api.GET("/auth/me", authH.Me, authn)

	api.GET("/pets", petH.ListPets)
	api.GET("/pets/:id", petH.GetPet)
	api.POST("/pets", petH.CreatePet, authn, adminOnly)
	api.PUT("/pets/:id", petH.UpdatePet, authn, adminOnly)
	api.DELETE("/pets/:id", petH.ArchivePet, authn, adminOnly)

	// Redis only guards duplicate submissions; the service runs without it.
	appMW := []echo.MiddlewareFunc{authn, anyRole}
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		appMW = append(appMW, middleware.Idempotency(rdb, cfg.IdempTTL))
	}
	api.POST("/applications", appH.SubmitApplication, appMW...)
	api.GET("/applications", appH.ListApplications, authn, anyRole)
	api.GET("/applications/:id", appH.GetApplication, authn, anyRole)
	api.PUT("/applications/:id", appH.SetApplicationStatus, authn, adminOnly)
	api.DELETE("/applications/:id", appH.ArchiveApplication, authn, adminOnly)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
