// Command devtoken issues an access token for local development. Users are
// owned by the upstream identity service, so there is no login endpoint here.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"homeclean-booking/internal/domain/user"
	"homeclean-booking/internal/pkg/clock"
	"homeclean-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

func main() {
	userFlag := flag.String("user", "", "user id (random when empty)")
	roleFlag := flag.String("role", string(user.RoleCustomer), "customer | manager | admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	userID := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			slog.Error("invalid user id", "user", *userFlag, "error", err)
			os.Exit(1)
		}
		userID = parsed
	}

	role, err := user.NewRole(*roleFlag)
	if err != nil {
		slog.Error("invalid role", "role", *roleFlag, "error", err)
		os.Exit(1)
	}

	token, err := jwt.NewService(secret, *ttl, clock.NewRealClock()).GenerateToken(userID, role)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
