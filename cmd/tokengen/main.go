// Command tokengen issues access tokens signed with the configured secret, for local testing.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"carpool/config"
	"carpool/internal/domain/entity"
	"carpool/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func main() {
	userFlag := flag.String("user", "", "User ID (UUID) to put in the sub claim; random when empty")
	sessionFlag := flag.String("session", string(entity.SessionUser), "Session kind: user or guest")
	ttlFlag := flag.Duration("ttl", time.Hour, "Token lifetime")
	secretFlag := flag.String("secret", "", "Signing secret; defaults to secretKey.access from config")
	flag.Parse()

	token, userID, err := run(*userFlag, *sessionFlag, *secretFlag, *ttlFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "user: %s\n", userID)
	fmt.Println(token)
}

func run(rawUser, rawSession, secret string, ttl time.Duration) (string, uuid.UUID, error) {
	userID := uuid.New()
	if rawUser != "" {
		parsed, err := uuid.Parse(rawUser)
		if err != nil {
			return "", uuid.Nil, errors.Wrap(err, "invalid -user")
		}
		userID = parsed
	}

	session := entity.SessionKind(rawSession)
	if session != entity.SessionUser && session != entity.SessionGuest {
		return "", uuid.Nil, errors.Errorf("invalid -session %q: must be user or guest", rawSession)
	}

	if ttl <= 0 {
		return "", uuid.Nil, errors.New("-ttl must be positive")
	}

	cfg := &config.Config{}
	if secret == "" {
		loaded, err := config.LoadWithEnv[config.Config]("config", "config", "../config", "../../config")
		if err != nil {
			return "", uuid.Nil, errors.Wrap(err, "failed to load config")
		}
		cfg = loaded
	} else {
		cfg.SecretKey.Access = secret
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", uuid.Nil, err
	}

	token, err := tokenSvc.GenerateAccessToken(userID, session, ttl)
	if err != nil {
		return "", uuid.Nil, err
	}

	return token, userID, nil
}
