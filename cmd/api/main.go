package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barbershop-project/booking-api/internal/config"
	dbpkg "github.com/barbershop-project/booking-api/internal/db"
	"github.com/barbershop-project/booking-api/internal/infra/slotlock"
	"github.com/barbershop-project/booking-api/internal/logger"
	"github.com/barbershop-project/booking-api/internal/middleware"
	"github.com/barbershop-project/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log.Logger = logger.New(cfg.Env)

	db := dbpkg.NewDB(cfg)

	// Lock distribuído por slot. Sem Redis a transação e o índice único
	// continuam protegendo o agendamento.
	var locker slotlock.Locker = slotlock.Noop{}
	if cfg.RedisURL != "" {
		rdb, err := slotlock.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis")
		}
		locker = slotlock.NewRedisLocker(rdb, cfg.LockTTL)
	}

	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, locker)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
