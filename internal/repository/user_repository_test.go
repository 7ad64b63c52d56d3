package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"lakehire/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestUserRepository_FindByEmail(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewUserRepository(gormDB)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "email", "role", "status"}).
		AddRow(id.String(), "test@example.com", "consultant", "approved")
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "test@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, model.RoleConsultant, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	user, err := repo.FindByEmail(context.Background(), "missing@example.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CountByStatus(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE status = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(int64(3)))

	count, err := repo.CountByStatus(context.Background(), model.UserStatusEmailVerified)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
