package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const userColumns = `
	user_id, email, hashed_password, first_name, dob_day, dob_month, dob_year,
	show_gender, gender_identity, gender_interest, url, about, matches,
	created_at, updated_at`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// userRow is the table shape; matches are stored as a text[] of target ids.
type userRow struct {
	domain.User
	MatchIDs pq.StringArray `db:"matches"`
}

func (r userRow) toDomain() *domain.User {
	u := r.User
	u.Matches = make([]domain.MatchRecord, 0, len(r.MatchIDs))
	for _, id := range r.MatchIDs {
		u.Matches = append(u.Matches, domain.MatchRecord{UserID: id})
	}
	return &u
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	matchIDs := user.MatchedUserIDs()
	query := `
		INSERT INTO users (
			user_id, email, hashed_password, first_name, dob_day, dob_month, dob_year,
			show_gender, gender_identity, gender_interest, url, about, matches
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.UserID, user.Email, user.HashedPassword, user.FirstName,
		user.DobDay, user.DobMonth, user.DobYear, user.ShowGender,
		user.GenderIdentity, user.GenderInterest, user.URL, user.About,
		pq.Array(matchIDs),
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, domain.NormalizeEmail(email))
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *userRepository) FindByIDs(ctx context.Context, userIDs []string) ([]*domain.User, error) {
	if len(userIDs) == 0 {
		return []*domain.User{}, nil
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ANY($1)`
	return r.selectMany(ctx, query, pq.Array(userIDs))
}

func (r *userRepository) FindByGender(ctx context.Context, genderIdentity string) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE gender_identity = $1 ORDER BY created_at`
	return r.selectMany(ctx, query, genderIdentity)
}

func (r *userRepository) selectMany(ctx context.Context, query string, args ...interface{}) ([]*domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) (domain.UpdateResult, error) {
	fields := update.Fields()
	if len(fields) == 0 {
		var count int64
		err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE user_id = $1`, userID)
		if err != nil {
			return domain.UpdateResult{}, err
		}
		return domain.UpdateResult{MatchedCount: count}, nil
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	query := `UPDATE users SET `
	args := []interface{}{}
	argCount := 1
	for _, column := range columns {
		query += fmt.Sprintf("%s = $%d, ", column, argCount)
		args = append(args, fields[column])
		argCount++
	}
	query += fmt.Sprintf("updated_at = $%d WHERE user_id = $%d", argCount, argCount+1)
	args = append(args, time.Now().UTC(), userID)

	return r.exec(ctx, query, args...)
}

func (r *userRepository) AppendMatch(ctx context.Context, ownerID, targetID string) (domain.UpdateResult, error) {
	query := `
		UPDATE users
		SET matches = array_append(matches, $1), updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2
	`
	return r.exec(ctx, query, targetID, ownerID)
}

func (r *userRepository) exec(ctx context.Context, query string, args ...interface{}) (domain.UpdateResult, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{MatchedCount: rows, ModifiedCount: rows}, nil
}

func (r *userRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
