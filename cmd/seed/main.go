package main // Seeds the database with the demo account and sample events.

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/event-ticketing/internal/config"
	"github.com/iliyamo/event-ticketing/internal/database"
	"github.com/iliyamo/event-ticketing/internal/model"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		surname VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		contact_number VARCHAR(32) NOT NULL DEFAULT '',
		street_address VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS events (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		category VARCHAR(32) NOT NULL,
		artist_names VARCHAR(255) NOT NULL DEFAULT '',
		venue VARCHAR(255) NOT NULL,
		event_date DATE NOT NULL,
		start_time VARCHAR(5) NOT NULL,
		end_time VARCHAR(5) NOT NULL DEFAULT '',
		capacity INT UNSIGNED NOT NULL,
		tickets_available INT UNSIGNED NOT NULL,
		image_url VARCHAR(512) NOT NULL DEFAULT '',
		description TEXT,
		age_restriction VARCHAR(32) NOT NULL DEFAULT 'All-ages',
		status VARCHAR(16) NOT NULL DEFAULT 'OPEN',
		created_by BIGINT UNSIGNED NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_events_date (event_date),
		KEY idx_events_category (category),
		KEY idx_events_created_by (created_by),
		CONSTRAINT fk_events_creator FOREIGN KEY (created_by) REFERENCES users (id) ON DELETE SET NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		reference CHAR(36) NOT NULL,
		user_id BIGINT UNSIGNED NOT NULL,
		event_id BIGINT UNSIGNED NOT NULL,
		quantity INT UNSIGNED NOT NULL,
		booked_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_bookings_reference (reference),
		KEY idx_bookings_user (user_id),
		KEY idx_bookings_event (event_id),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users (id),
		CONSTRAINT fk_bookings_event FOREIGN KEY (event_id) REFERENCES events (id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS comments (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		event_id BIGINT UNSIGNED NOT NULL,
		user_id BIGINT UNSIGNED NULL,
		author_name VARCHAR(200) NOT NULL,
		content VARCHAR(1000) NOT NULL,
		posted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_comments_event (event_id),
		CONSTRAINT fk_comments_event FOREIGN KEY (event_id) REFERENCES events (id),
		CONSTRAINT fk_comments_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE SET NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_refresh_tokens_hash (token_hash),
		KEY idx_refresh_tokens_user (user_id),
		CONSTRAINT fk_refresh_tokens_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB`,
}

type seedEvent struct {
	title    string
	category string
	artist   string
	venue    string
	dayOff   int
	capacity uint32
	avail    uint32
	image    string
	status   string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("schema: %v", err)
		}
	}

	var existing int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&existing); err != nil {
		log.Fatalf("count users: %v", err)
	}
	if existing > 0 {
		log.Println("database already seeded, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), cfg.BcryptCost)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}
	res, err := db.ExecContext(ctx,
		`INSERT INTO users (first_name, surname, email, password_hash, contact_number, street_address)
		 VALUES (?,?,?,?,?,?)`,
		"Demo", "User", "demo@example.com", string(hash),
		"0400123456", "123 Example St, Brisbane QLD 4000")
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}
	userID, _ := res.LastInsertId()

	// Sample events start five days out so the whole set shows up as
	// upcoming on first run.
	base := time.Now().AddDate(0, 0, 5)
	seeds := []seedEvent{
		{"Classical Night", "Classical", "Mike", "Room 1", 0, 200, 50, "classical.jpg", model.StatusOpen},
		{"Indie Live", "Indie", "Jenny", "Room 2", 2, 150, 80, "indie.jpg", model.StatusOpen},
		{"Jazz Trio", "Jazz", "Tom", "Room 3", 4, 80, 0, "jazz.jpg", model.StatusSoldOut},
		{"EDM Party", "Electronic", "Nova", "Room 4", 6, 300, 300, "electronic.jpg", model.StatusOpen},
		{"Pop Show", "Pop", "Amy", "Room 5", 8, 180, 30, "pop.jpg", model.StatusOpen},
		{"Rock Fest", "Rock", "Riffs", "Room 6", 10, 220, 120, "rock.jpg", model.StatusOpen},
		{"Cancelled Concert", "Rock", "No Show", "Venue X", 12, 100, 100, "rock.jpg", model.StatusCancelled},
	}
	for _, s := range seeds {
		if err := insertEvent(ctx, db, uint64(userID), base, s); err != nil {
			log.Fatalf("seed event %q: %v", s.title, err)
		}
	}

	log.Printf("database seeded: 1 user, %d events", len(seeds))
}

func insertEvent(ctx context.Context, db *sql.DB, userID uint64, base time.Time, s seedEvent) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO events
			(title, category, artist_names, venue, event_date, start_time, end_time,
			 capacity, tickets_available, image_url, description, age_restriction, status, created_by)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		s.title, s.category, s.artist, s.venue,
		base.AddDate(0, 0, s.dayOff).Format("2006-01-02"), "19:00", "21:00",
		s.capacity, s.avail,
		"/static/img/"+s.image,
		"Enjoy the great music and have a wonderful night!",
		"All-ages", s.status, userID)
	return err
}
