package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/minseop-dev/userboard/config"
	"github.com/minseop-dev/userboard/internal/domain/entity"
)

// Seeds one PENDING and one ACTIVE account plus a post for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	pendingID := seedAccount(db, "pending@userboard.dev", "pending-user", "Daejeon", entity.AccountPending)
	activeID := seedAccount(db, "active@userboard.dev", "active-user", "Seoul", entity.AccountActive)
	fmt.Printf("seeded accounts: pending=%s active=%s\n", pendingID, activeID)

	var postID string
	err = db.QueryRow(`
		INSERT INTO posts (content, created_at, writer_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "hello from the seed", 1700000000000, activeID).Scan(&postID)
	if err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	fmt.Printf("seeded post: id=%s writer=%s\n", postID, activeID)
}

func seedAccount(db *sql.DB, email, nickname, address string, status entity.AccountStatus) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO accounts (email, nickname, address, certification_code, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET nickname = EXCLUDED.nickname
		RETURNING id
	`, email, nickname, address, uuid.NewString(), status).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed account %s: %v", email, err)
	}
	return id
}
