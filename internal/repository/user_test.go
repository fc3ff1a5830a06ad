package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniblog/internal/model"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	created := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("jay", "jay@example.com", "hashed", "bio", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))

	u := &model.User{Username: "jay", Email: "jay@example.com", PasswordHash: "hashed", Bio: "bio"}
	err := repo.Create(context.Background(), u)

	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, created, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	err := repo.Create(context.Background(), &model.User{Username: "jay", Email: "jay@example.com"})

	assert.ErrorIs(t, err, model.ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "bio", "is_private", "created_at"}).
		AddRow(2, "maria", "maria@example.com", "hashed", "", false, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("maria").
		WillReturnRows(rows)

	u, err := repo.GetByUsername(context.Background(), "maria")

	require.NoError(t, err)
	assert.Equal(t, int64(2), u.ID)
	assert.Equal(t, "maria", u.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByUsernameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("jay", "new@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "jay", "new@example.com")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "bio", "is_private", "created_at"}).
		AddRow(1, "jay", "jay@example.com", "hashed", "new bio", true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WithArgs("new bio", true, int64(1)).
		WillReturnRows(rows)

	u, err := repo.UpdateProfile(context.Background(), 1, "new bio", true)

	require.NoError(t, err)
	assert.Equal(t, "new bio", u.Bio)
	assert.True(t, u.IsPrivate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListPublicIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE is_private = FALSE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	ids, err := repo.ListPublicIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
