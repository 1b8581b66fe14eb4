package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/db"
	"github.com/danielhkuo/ballotbox/engine"
	"github.com/danielhkuo/ballotbox/router"
)

func main() {
	var err error

	// Load .env if present; real env variables win
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Events always go to the log; with a database they also go to the
	// event table.
	logSink := engine.SinkFunc(func(ev engine.Event) {
		slog.Info("event", "name", ev.Name, "ballot_id", ev.BallotID)
	})

	var recordStore engine.RecordStore
	sink := engine.Sink(logSink)

	// Persistence is optional. Without a DATABASE_URL the registry runs
	// fully in-memory.
	if cfg.DatabaseURL != "" {
		dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Verify connection
		if err := dbConn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}

		store := db.NewStore(dbConn)
		recordStore = store
		sink = engine.MultiSink(logSink, store)

		prior, err := store.LoadRecords()
		if err != nil {
			slog.Error("catalogue load failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database ready", "type", cfg.DatabaseType, "catalogued_ballots", len(prior))
	} else {
		slog.Info("Running in-memory, no persistence")
	}

	reg := engine.NewRegistry(auth.GenerateBallotID, recordStore, sink)

	// Create router
	mux := router.NewRouter(reg, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
