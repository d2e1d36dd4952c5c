package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, company_id, name, email, password_hash, cpf, role,
	   department, position, phone, profile_image_url, authorized_devices,
	   is_active, last_login_at, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var found user.User
	var devices []byte
	err := row.Scan(
		&found.ID,
		&found.CompanyID,
		&found.Name,
		&found.Email,
		&found.PasswordHash,
		&found.CPF,
		&found.Role,
		&found.Department,
		&found.Position,
		&found.Phone,
		&found.ProfileImageURL,
		&devices,
		&found.IsActive,
		&found.LastLoginAt,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	if len(devices) > 0 {
		if err := json.Unmarshal(devices, &found.AuthorizedDevices); err != nil {
			return user.User{}, fmt.Errorf("failed to decode authorized devices: %w", err)
		}
	}
	return found, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	devices, err := json.Marshal(newUser.AuthorizedDevices)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to encode authorized devices: %w", err)
	}

	query := `
		INSERT INTO users (
			company_id, name, email, password_hash, cpf, role,
			department, position, phone, profile_image_url, authorized_devices, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.CompanyID,
		newUser.Name,
		newUser.Email,
		newUser.PasswordHash,
		newUser.CPF,
		newUser.Role,
		newUser.Department,
		newUser.Position,
		newUser.Phone,
		newUser.ProfileImageURL,
		devices,
		newUser.IsActive,
	))
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	found, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	found, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return found, nil
}

// GetByCPF implements user.UserRepository.
func (r *userRepositoryImpl) GetByCPF(ctx context.Context, cpf string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE cpf = $1`

	found, err := scanUser(q.QueryRow(ctx, query, cpf))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by cpf: %w", err)
	}

	return found, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	devices, err := json.Marshal(u.AuthorizedDevices)
	if err != nil {
		return fmt.Errorf("failed to encode authorized devices: %w", err)
	}

	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, role = $4,
			department = $5, position = $6, phone = $7, profile_image_url = $8,
			authorized_devices = $9, is_active = $10, updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.Department,
		u.Position,
		u.Phone,
		u.ProfileImageURL,
		devices,
		u.IsActive,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin implements user.UserRepository.
func (r *userRepositoryImpl) UpdateLastLogin(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`

	if _, err := q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// AddAuthorizedDevice implements user.UserRepository. The statement
// re-checks the list length and device-id uniqueness so two concurrent
// logins cannot both append past the limit.
func (r *userRepositoryImpl) AddAuthorizedDevice(ctx context.Context, userID string, device user.AuthorizedDevice, maxDevices int) error {
	q := GetQuerier(ctx, r.db)

	entry, err := json.Marshal(device)
	if err != nil {
		return fmt.Errorf("failed to encode device: %w", err)
	}

	query := `
		UPDATE users
		SET authorized_devices = COALESCE(authorized_devices, '[]'::jsonb) || $1::jsonb,
			updated_at = NOW()
		WHERE id = $2
		  AND jsonb_array_length(COALESCE(authorized_devices, '[]'::jsonb)) < $3
		  AND NOT COALESCE(authorized_devices, '[]'::jsonb) @> jsonb_build_array(jsonb_build_object('device_id', $4::text))
	`

	tag, err := q.Exec(ctx, query, entry, userID, maxDevices, device.DeviceID)
	if err != nil {
		return fmt.Errorf("failed to add authorized device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the device is already present (fine) or the list is full.
		existing, err := r.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if existing.IsDeviceAuthorized(device.DeviceID) {
			return nil
		}
		return user.ErrDeviceLimitReached
	}

	return nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.CompanyID != nil {
		where += fmt.Sprintf(" AND u.company_id = $%d", argPos)
		args = append(args, *filter.CompanyID)
		argPos++
	}
	if filter.Role != nil {
		where += fmt.Sprintf(" AND u.role = $%d", argPos)
		args = append(args, *filter.Role)
		argPos++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND u.is_active = $%d", argPos)
		args = append(args, *filter.IsActive)
		argPos++
	}
	if filter.Department != nil {
		where += fmt.Sprintf(" AND u.department = $%d", argPos)
		args = append(args, *filter.Department)
		argPos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (u.name ILIKE $%d OR u.email ILIKE $%d OR u.department ILIKE $%d)", argPos, argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM users u` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `
		SELECT u.id, u.company_id, u.name, u.email, u.password_hash, u.cpf, u.role,
			   u.department, u.position, u.phone, u.profile_image_url, u.authorized_devices,
			   u.is_active, u.last_login_at, u.created_at, u.updated_at,
			   c.name AS company_name
		FROM users u
		JOIN companies c ON c.id = u.company_id` + where +
		fmt.Sprintf(" ORDER BY u.name ASC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var found user.User
		var devices []byte
		err := rows.Scan(
			&found.ID,
			&found.CompanyID,
			&found.Name,
			&found.Email,
			&found.PasswordHash,
			&found.CPF,
			&found.Role,
			&found.Department,
			&found.Position,
			&found.Phone,
			&found.ProfileImageURL,
			&devices,
			&found.IsActive,
			&found.LastLoginAt,
			&found.CreatedAt,
			&found.UpdatedAt,
			&found.CompanyName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		if len(devices) > 0 {
			if err := json.Unmarshal(devices, &found.AuthorizedDevices); err != nil {
				return nil, 0, fmt.Errorf("failed to decode authorized devices: %w", err)
			}
		}
		users = append(users, found)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// CountByCompany implements user.UserRepository.
func (r *userRepositoryImpl) CountByCompany(ctx context.Context, companyID string, roles []user.Role, activeOnly bool) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM users WHERE company_id = $1`
	args := []interface{}{companyID}
	argPos := 2

	if len(roles) > 0 {
		query += fmt.Sprintf(" AND role = ANY($%d)", argPos)
		roleStrs := make([]string, len(roles))
		for i, role := range roles {
			roleStrs[i] = string(role)
		}
		args = append(args, roleStrs)
		argPos++
	}
	if activeOnly {
		query += " AND is_active = TRUE"
	}

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountInactiveByCompany implements user.UserRepository.
func (r *userRepositoryImpl) CountInactiveByCompany(ctx context.Context, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE company_id = $1 AND is_active = FALSE`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count inactive users: %w", err)
	}
	return count, nil
}

// EmailExists implements user.UserRepository.
func (r *userRepositoryImpl) EmailExists(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// DepartmentCounts implements user.UserRepository.
func (r *userRepositoryImpl) DepartmentCounts(ctx context.Context, companyID string) ([]user.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(department, ''), COUNT(*)
		FROM users
		WHERE company_id = $1 AND is_active = TRUE
		GROUP BY department
		ORDER BY COUNT(*) DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count users by department: %w", err)
	}
	defer rows.Close()

	counts := make([]user.DepartmentCount, 0)
	for rows.Next() {
		var dc user.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
