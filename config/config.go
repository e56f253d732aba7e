package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Init loads a .env file if one exists. Plain environment variables work
// without it, so a missing file is not fatal.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file, using process environment")
		return
	}
	log.Println("[config] loaded environment variables from .env")
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

// ListenAddr returns the HTTP listen address, default :8080.
func ListenAddr() string {
	addr, err := GetEnvVariable("CATCH_ADDR")
	if err != nil {
		return ":8080"
	}
	return addr
}

// MatchSeconds returns an override for the match duration, or 0 when
// unset or unparseable.
func MatchSeconds() float64 {
	v, err := GetEnvVariable("CATCH_MATCH_SECONDS")
	if err != nil {
		return 0
	}
	s, err := strconv.ParseFloat(v, 64)
	if err != nil || s <= 0 {
		log.Printf("[config] ignoring bad CATCH_MATCH_SECONDS=%q", v)
		return 0
	}
	return s
}

// Seed returns a fixed RNG seed for reproducible matches, or 0 to seed
// from the clock.
func Seed() int64 {
	v, err := GetEnvVariable("CATCH_SEED")
	if err != nil {
		return 0
	}
	s, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("[config] ignoring bad CATCH_SEED=%q", v)
		return 0
	}
	return s
}
