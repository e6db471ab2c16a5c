//go:build ignore

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/auth"
)

// go run scripts/gentoken.go -user <uuid> -name "Jane Doe"
func main() {
	user := flag.String("user", usecase.FixtureUserID, "user id placed in the sub claim")
	name := flag.String("name", "Alex Devaux", "display name")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}

	token, err := auth.SignHS256(secret, *user, *name, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
