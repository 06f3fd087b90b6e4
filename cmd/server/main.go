package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nbraces/raceindex/internal/config"
	"github.com/nbraces/raceindex/internal/db"
	"github.com/nbraces/raceindex/internal/logging"
	"github.com/nbraces/raceindex/internal/session"
	"github.com/nbraces/raceindex/internal/web"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer lg.Closer()
	zap.ReplaceGlobals(lg.Base)

	if err := db.Init(cfg.DBPath); err != nil {
		lg.Sugar.Fatalw("db init", "path", cfg.DBPath, "err", err)
	}
	if err := db.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		lg.Sugar.Fatalw("seed admin", "err", err)
	}

	sessions := session.NewManager(session.Options{TTL: cfg.SessionTTL})
	r := web.Router(sessions)

	lg.Sugar.Infow("race directory listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		lg.Sugar.Fatalw("server", "err", err)
	}
}
