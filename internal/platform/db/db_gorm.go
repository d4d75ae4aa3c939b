// Package db opens the application database connection.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"identity_backend/internal/feature/auth/domain/entity"
)

// Open connects to postgres with a bounded retry loop and runs the schema
// migration. It is fatal when the database stays unreachable; the process
// cannot serve anything without its store.
func Open(dsn string) *gorm.DB {
	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if err := Migrate(conn); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return conn
}

// Migrate creates or updates the users table, including the unique index on
// email that enforces the signup uniqueness invariant.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&entity.User{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
