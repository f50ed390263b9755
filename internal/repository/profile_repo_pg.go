package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Arjunsuryas/Flight-Booking/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile, passwordHash string) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	// GetCredentials returns the user id and password hash for an email.
	GetCredentials(ctx context.Context, email string) (string, string, error)
	// Update changes the mutable profile fields. Email is fixed at sign-up.
	Update(ctx context.Context, id, fullName, phone string) (*domain.Profile, error)
}

type PGProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) ProfileRepository {
	return &PGProfileRepository{db: db}
}

func (r *PGProfileRepository) Create(ctx context.Context, profile *domain.Profile, passwordHash string) error {
	err := r.db.QueryRow(ctx, `INSERT INTO profiles (id, full_name, email, phone, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		profile.ID, profile.FullName, profile.Email, profile.Phone, passwordHash).
		Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "profiles_email_key") {
			return domain.ErrEmailTaken
		}
		return unavailable("create profile", err)
	}
	return nil
}

func (r *PGProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	sqlStr, args, err := psql.Select("id", "full_name", "email", "phone", "created_at", "updated_at").
		From("profiles").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p domain.Profile
	err = r.db.QueryRow(ctx, sqlStr, args...).
		Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, unavailable("get profile", err)
	}
	return &p, nil
}

func (r *PGProfileRepository) GetCredentials(ctx context.Context, email string) (string, string, error) {
	var id, hash string
	err := r.db.QueryRow(ctx, `SELECT id, password_hash FROM profiles WHERE email=$1`, email).Scan(&id, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", "", unavailable("get credentials", err)
	}
	return id, hash, nil
}

func (r *PGProfileRepository) Update(ctx context.Context, id, fullName, phone string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.QueryRow(ctx, `UPDATE profiles SET full_name=$1, phone=$2, updated_at=now()
		WHERE id=$3
		RETURNING id, full_name, email, phone, created_at, updated_at`, fullName, phone, id).
		Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, unavailable("update profile", err)
	}
	return &p, nil
}

var _ ProfileRepository = (*PGProfileRepository)(nil)
