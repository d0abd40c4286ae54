// mktoken mints a development bearer token for curling the authed routes.
//
//	go run ./cmd/mktoken -sub user-123 -role admin
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

func main() {
	sub := flag.String("sub", "dev-user", "subject (user id)")
	role := flag.String("role", "member", "role claim: member | provider | admin")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	claims := jwt.MapClaims{
		"sub":  *sub,
		"role": *role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(*ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(signed)
}
