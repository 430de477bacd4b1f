package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	adminapp "github.com/muhammadheryan/esports-tournament/application/admin"
	"github.com/muhammadheryan/esports-tournament/cmd/config"
)

// admintoken prints a bearer token for the admin routes, signed with ADMIN_JWT_SECRET.
func main() {
	subject := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to ADMIN_TOKEN_TTL")
	flag.Parse()

	cfg := config.Load()
	if *ttl > 0 {
		cfg.Auth.AdminTokenTTL = *ttl
	}

	app := adminapp.NewAdminApp(cfg, nil, nil, nil)
	token, err := app.IssueToken(context.Background(), *subject)
	if err != nil {
		fmt.Fprintln(os.Stderr, "admintoken:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", time.Now().Add(cfg.Auth.AdminTokenTTL).UTC().Format(time.RFC3339))
}
