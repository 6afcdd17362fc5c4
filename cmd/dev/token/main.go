package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"admissionsgateway/internal/api"
	"admissionsgateway/pkg/config"
)

// Mints an applicant session token for local testing:
//
//	go run ./cmd/dev/token -applicant 1b2c3d
func main() {
	var (
		applicant = flag.String("applicant", "", "applicant id to embed in the token")
		ttl       = flag.Duration("ttl", 24*time.Hour, "token lifetime")
	)
	flag.Parse()

	if *applicant == "" {
		fmt.Fprintln(os.Stderr, "missing -applicant")
		os.Exit(2)
	}

	cfg := config.Load()
	if cfg.SessionSecret == "" {
		fmt.Fprintln(os.Stderr, "missing SESSION_SECRET in env/.env")
		os.Exit(2)
	}

	tok, err := api.IssueSessionToken(*applicant, cfg.SessionSecret, *ttl, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
