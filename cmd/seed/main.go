package main

import (
	"fmt"
	"log"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/oggyb/waveos/internal/auth"
	"github.com/oggyb/waveos/internal/config"
	"github.com/oggyb/waveos/internal/db"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file; env vars override it")
	users := flag.Int("users", 10, "number of demo profiles to create")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the printed dev session tokens")
	schedulerKey := flag.String("hash-scheduler-key", "", "print the SCHEDULER_KEY_HASH for this key and exit")
	flag.Parse()

	if *schedulerKey != "" {
		hash, err := auth.HashSchedulerKey(*schedulerKey, 12)
		if err != nil {
			log.Fatalf("failed to hash key: %v", err)
		}
		fmt.Println(hash)
		return
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	profiles, err := db.SeedTestData(database, *users)
	if err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	// dev tokens stand in for the identity service
	sessions, err := auth.NewSessionVerifier(cfg.Auth.SessionSecret)
	if err != nil {
		log.Printf("SESSION_SECRET not set, skipping dev tokens")
	} else {
		exp := time.Now().Add(*tokenTTL)
		for _, p := range profiles {
			fmt.Printf("%s\t%s\tactive=%t\t%s\n", p.Username, p.ID, p.IsActive, sessions.Issue(p.ID, exp))
		}
	}

	log.Println("Seeding completed.")
}
