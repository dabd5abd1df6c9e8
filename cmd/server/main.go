package main // Entry point

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/davolio/osteria-reservations/internal/config"
	"github.com/davolio/osteria-reservations/internal/database"
	"github.com/davolio/osteria-reservations/internal/handler"
	"github.com/davolio/osteria-reservations/internal/queue"
	"github.com/davolio/osteria-reservations/internal/repository"
	"github.com/davolio/osteria-reservations/internal/router"
	"github.com/davolio/osteria-reservations/internal/session"
)

func main() {
	// .env is for local development; in deployment the variables come from
	// the environment and the file is simply absent.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it picker sessions live in process memory
	// and the cache and rate limiter switch themselves off.
	rdb := config.NewRedisClient()
	var sessions session.Store
	if rdb != nil {
		sessions = session.NewRedisStore(rdb, 30*time.Minute)
	} else {
		log.Println("redis unavailable; using in-memory picker sessions")
		sessions = session.NewMemoryStore(30 * time.Minute)
	}

	reservations := repository.NewReservationRepo(db)
	settings := repository.NewSettingsRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	scheduleH := handler.NewScheduleHandler(settings, config.LoadScheduleFallback())
	pickerH := handler.NewPickerHandler(sessions, scheduleH)
	reservationH := handler.NewReservationHandler(reservations, scheduleH)
	adminResH := handler.NewAdminReservationHandler(reservations)
	adminSchedH := handler.NewAdminScheduleHandler(settings)
	authH := handler.NewAuthHandler(cfg, users, tokens)

	// The consumer tails reservation.created and appends to the log file
	// the kitchen printer watches.  It reconnects on its own forever.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, scheduleH, pickerH, reservationH, rdb)
	router.RegisterAdmin(e, adminResH, adminSchedH, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
