// Command migrate applies the embedded schema migrations.
//
//	migrate [up|down|drop|version]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"interview-tracker/config"
	"interview-tracker/migrations"
	"interview-tracker/pkg/database"
	"interview-tracker/pkg/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [up|down|drop|version]\n", os.Args[0])
		flag.PrintDefaults()
	}
	dsn := flag.String("database-url", "", "postgres URL (defaults to DATABASE_URL / DB_* settings)")
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	url := *dsn
	if url == "" {
		url = cfg.DatabaseURL()
	}

	status, err := database.Migrate(url, migrations.FS, action)
	if err != nil {
		logger.Log.Error("Migration failed", "action", action, "error", err)
		os.Exit(1)
	}

	if !status.Applied {
		logger.Log.Info("No migrations applied", "action", action)
		return
	}
	logger.Log.Info("Migration complete", "action", action, "version", status.Version, "dirty", status.Dirty)
}
