package repositories

import (
	"database/sql"
	"time"

	"autocare/internal/models"
)

type AdminUserRepository interface {
	Create(user *models.AdminUser) error
	GetByID(id int) (*models.AdminUser, error)
	GetByUsername(username string) (*models.AdminUser, error)
	List(limit, offset int) ([]*models.AdminUser, error)
	Delete(id int) error

	// refresh helpers
	UpdateRefresh(userID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.AdminUser, error)
	ClearRefresh(userID int) error
	GetByRefreshToken(token string) (*models.AdminUser, error)
}

type adminUserRepository struct {
	DB *sql.DB
}

func NewAdminUserRepository(db *sql.DB) AdminUserRepository {
	return &adminUserRepository{DB: db}
}

const adminUserColumns = `id, username, email, password_hash, role_id, refresh_token, refresh_expires_at, refresh_revoked, created_at`

func scanAdminUser(row interface{ Scan(...any) error }) (*models.AdminUser, error) {
	u := &models.AdminUser{}
	var (
		rt  sql.NullString
		rte sql.NullTime
		rr  sql.NullBool
	)
	if err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.RoleID,
		&rt, &rte, &rr, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	if rt.Valid {
		s := rt.String
		u.RefreshToken = &s
	}
	if rte.Valid {
		t := rte.Time
		u.RefreshExpiresAt = &t
	}
	if rr.Valid {
		u.RefreshRevoked = rr.Bool
	}
	return u, nil
}

func (r *adminUserRepository) Create(user *models.AdminUser) error {
	const q = `
		INSERT INTO admin_users (username, email, password_hash, role_id, refresh_token, refresh_expires_at, refresh_revoked, created_at)
		VALUES ($1,$2,$3,$4,NULL,NULL,FALSE,$5)
		RETURNING id
	`
	return r.DB.QueryRow(q, user.Username, user.Email, user.PasswordHash, user.RoleID, user.CreatedAt).Scan(&user.ID)
}

func (r *adminUserRepository) GetByID(id int) (*models.AdminUser, error) {
	q := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE id=$1`
	u, err := scanAdminUser(r.DB.QueryRow(q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *adminUserRepository) GetByUsername(username string) (*models.AdminUser, error) {
	q := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE username=$1`
	u, err := scanAdminUser(r.DB.QueryRow(q, username))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *adminUserRepository) List(limit, offset int) ([]*models.AdminUser, error) {
	q := `SELECT ` + adminUserColumns + ` FROM admin_users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.AdminUser
	for rows.Next() {
		u, err := scanAdminUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *adminUserRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM admin_users WHERE id=$1`, id)
	return err
}

// ===== refresh helpers =====

func (r *adminUserRepository) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	const q = `
		UPDATE admin_users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE id=$3
	`
	_, err := r.DB.Exec(q, token, expiresAt, userID)
	return err
}

func (r *adminUserRepository) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.AdminUser, error) {
	q := `
		UPDATE admin_users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE refresh_token=$3
		RETURNING ` + adminUserColumns
	u, err := scanAdminUser(r.DB.QueryRow(q, newToken, newExpiresAt, oldToken))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *adminUserRepository) ClearRefresh(userID int) error {
	_, err := r.DB.Exec(`
		UPDATE admin_users
		SET refresh_token=NULL, refresh_expires_at=NULL, refresh_revoked=TRUE
		WHERE id=$1
	`, userID)
	return err
}

func (r *adminUserRepository) GetByRefreshToken(token string) (*models.AdminUser, error) {
	q := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE refresh_token=$1`
	u, err := scanAdminUser(r.DB.QueryRow(q, token))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}
