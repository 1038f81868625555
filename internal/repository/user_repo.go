package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"weddingrsvp/internal/database"
	"weddingrsvp/internal/models"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser creates a new operator account
func (r *UserRepository) CreateUser(email, passwordHash, name string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}

	query := `INSERT INTO users (id, email, password_hash, name, oauth_provider, oauth_subject, created_at)
		VALUES (?, ?, ?, ?, '', '', ?)`
	if _, err := r.db.Exec(query, user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email, or nil if not found
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	query := `SELECT id, email, password_hash, name, oauth_provider, oauth_subject, created_at
		FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRow(query, email))
}

// GetUserByID retrieves a user by ID, or nil if not found
func (r *UserRepository) GetUserByID(id string) (*models.User, error) {
	query := `SELECT id, email, password_hash, name, oauth_provider, oauth_subject, created_at
		FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRow(query, id))
}

// GetUserByOAuth retrieves a user by OAuth provider and subject, or nil if not found
func (r *UserRepository) GetUserByOAuth(provider, subject string) (*models.User, error) {
	query := `SELECT id, email, password_hash, name, oauth_provider, oauth_subject, created_at
		FROM users WHERE oauth_provider = ? AND oauth_subject = ?`
	return r.scanUser(r.db.QueryRow(query, provider, subject))
}

// LinkOAuthProvider attaches an OAuth identity to an existing account
func (r *UserRepository) LinkOAuthProvider(userID, provider, subject string) error {
	query := `UPDATE users SET oauth_provider = ?, oauth_subject = ? WHERE id = ?`
	_, err := r.db.Exec(query, provider, subject, userID)
	return err
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name,
		&user.OAuthProvider, &user.OAuthSubject, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
