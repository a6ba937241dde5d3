package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/jobtrail/jobtrail-api/config"
	"github.com/jobtrail/jobtrail-api/internal/domain/entity"
	"github.com/jobtrail/jobtrail-api/pkg/helpers"
)

// Seeds a demo user with a handful of applications so a fresh install
// has something to show on the dashboard.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@jobtrail.dev"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, profile_picture)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, "").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	now := time.Now().UTC()
	jobs := []struct {
		company string
		role    string
		status  string
		applied time.Time
	}{
		{"Google", "Software Engineer", entity.StatusApplied, now.AddDate(0, 0, -3)},
		{"Microsoft", "Backend Developer", entity.StatusInterview, now.AddDate(0, -1, -10)},
		{"Netflix", "Platform Engineer", entity.StatusOffer, now.AddDate(0, -2, -5)},
		{"Amazon", "SDE II", entity.StatusRejected, now.AddDate(0, -3, 0)},
	}
	for _, j := range jobs {
		if _, err := db.Exec(`
			INSERT INTO jobs (user_id, company, role, status, date_applied)
			SELECT $1, $2, $3, $4, $5
			WHERE NOT EXISTS (
				SELECT 1 FROM jobs WHERE user_id = $1 AND company = $2 AND role = $3
			)
		`, userID, j.company, j.role, j.status, j.applied); err != nil {
			log.Fatalf("failed to seed job %s/%s: %v", j.company, j.role, err)
		}
	}
	fmt.Printf("seeded %d jobs\n", len(jobs))

	if _, err := db.Exec(`
		INSERT INTO companies (user_id, name, industry, location, description)
		SELECT $1, 'Acme Corp', 'Technology', 'Remote', 'Referred by a friend'
		WHERE NOT EXISTS (
			SELECT 1 FROM companies WHERE user_id = $1 AND name = 'Acme Corp'
		)
	`, userID); err != nil {
		log.Fatalf("failed to seed company: %v", err)
	}
	fmt.Println("seeded companies")
}
