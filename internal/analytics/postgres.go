package analytics

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/models"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/pkg/config"
)

//go:embed migrations.sql
var migrations embed.FS

// PostgresSink persists interactions to PostgreSQL.
type PostgresSink struct {
	db *sql.DB
}

func NewPostgresSink(cfg config.DatabaseConfig) (*PostgresSink, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	sink := &PostgresSink{db: db}

	if err := sink.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}

	return sink, nil
}

func (s *PostgresSink) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}

	return nil
}

func (s *PostgresSink) Record(interaction models.Interaction) error {
	createdAt := interaction.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO interactions (id, user_id, message_type, response_time_ms, escalated, faq_matched, language, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		interaction.ID,
		interaction.UserID,
		interaction.MessageType,
		interaction.ResponseTimeMS,
		interaction.Escalated,
		interaction.FAQMatched,
		interaction.Language,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("error recording interaction: %v", err)
	}
	return nil
}

func (s *PostgresSink) Close() error {
	return s.db.Close()
}
