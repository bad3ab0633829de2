package modelhost_test

import (
	"context"
	"errors"
	"testing"

	"room-furnisher/feature/furnishing/modelhost"
	"room-furnisher/feature/furnishing/placement"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockModel(t *testing.T) (*modelhost.Model, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return modelhost.New(db, zap.NewNop()), mock
}

func TestModel_UnitOfWork_MySQL(t *testing.T) {
	cat, sets := deskTables(t)

	t.Run("Room Query Failure Rolls Back", func(t *testing.T) {
		m, mock := newMockModel(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT \\* FROM `rooms`").WillReturnError(errors.New("lost connection"))
		mock.ExpectRollback()

		engine := placement.NewEngine(m, placement.DefaultConfig(), zap.NewNop())
		_, err := engine.Run(context.Background(), cat, sets, placement.Options{})
		assert.ErrorIs(t, err, placement.ErrHost)
		assert.Contains(t, err.Error(), "lost connection")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin Failure", func(t *testing.T) {
		m, mock := newMockModel(t)
		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		engine := placement.NewEngine(m, placement.DefaultConfig(), zap.NewNop())
		_, err := engine.Run(context.Background(), cat, sets, placement.Options{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "too many connections")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Model Commits", func(t *testing.T) {
		m, mock := newMockModel(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT \\* FROM `rooms`").WillReturnRows(sqlmock.NewRows([]string{"id", "number", "name", "placed", "x", "y", "z"}))
		mock.ExpectCommit()

		engine := placement.NewEngine(m, placement.DefaultConfig(), zap.NewNop())
		result, err := engine.Run(context.Background(), cat, sets, placement.Options{})
		require.NoError(t, err)
		assert.Zero(t, result.Placed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
