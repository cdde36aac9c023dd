// Package main provides superuser management utilities for SimpleAdvert.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"simpleadvert/internal/auth"
	"simpleadvert/internal/config"
	"simpleadvert/internal/database"
	"simpleadvert/internal/repository"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/admin promote <email>            - Grant superuser rights")
	fmt.Println("  go run ./cmd/admin demote <email>             - Revoke superuser rights")
	fmt.Println("  go run ./cmd/admin list-superusers            - List all superusers")
	fmt.Println("  go run ./cmd/admin token [-ttl 1h] <user_id>  - Mint a bearer token for local testing")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	command, args := os.Args[1], os.Args[2:]

	if command == "token" {
		mintToken(cfg, args)
		return
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	users := repository.NewUserRepository(db)

	switch command {
	case "promote", "demote":
		if len(args) < 1 {
			usage()
			os.Exit(1)
		}
		if err := users.SetSuperuser(ctx, args[0], command == "promote"); err != nil {
			log.Fatalf("Failed to %s %s: %v", command, args[0], err)
		}
		if command == "promote" {
			fmt.Printf("✅ %s is now a superuser\n", args[0])
		} else {
			fmt.Printf("✅ %s is now a regular user\n", args[0])
		}

	case "list-superusers":
		supers, err := users.ListSuperusers(ctx)
		if err != nil {
			log.Fatalf("Failed to list superusers: %v", err)
		}
		if len(supers) == 0 {
			fmt.Println("No superusers found")
			return
		}
		for _, u := range supers {
			fmt.Printf("  ID: %d | Email: %s | Active: %v\n", u.ID, u.Email, u.IsActive)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		usage()
		os.Exit(1)
	}
}

func mintToken(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	ttl := fs.Duration("ttl", time.Hour, "Token lifetime")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	id, err := strconv.ParseUint(fs.Arg(0), 10, 64)
	if err != nil || id == 0 {
		log.Fatalf("Invalid user ID %q", fs.Arg(0))
	}

	token, err := auth.NewTokens(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience).Issue(uint(id), *ttl)
	if err != nil {
		log.Fatalf("Failed to mint token: %v", err)
	}
	fmt.Println(token)
}
