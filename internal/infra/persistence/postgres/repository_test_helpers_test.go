package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the marketplace tables.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" is a new database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.PolygonModel{},
		&model.AvailableLocationModel{},
		&model.AvailableLocationPolygonModel{},
		&model.OrderModel{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, userType entity.UserType, status entity.Status) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
		Type:         userType,
		Status:       status,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedPolygon(t *testing.T, db *gorm.DB, name string, addedBy uuid.UUID) *entity.Polygon {
	t.Helper()

	polygon := &entity.Polygon{
		Name: name,
		Coordinates: []entity.Coordinate{
			{Lat: 6.90, Lng: 79.85},
			{Lat: 6.90, Lng: 79.87},
			{Lat: 6.92, Lng: 79.87},
			{Lat: 6.90, Lng: 79.85},
		},
		AddedBy: addedBy,
	}
	require.NoError(t, NewPolygonRepository(db).Create(context.Background(), polygon))

	return polygon
}
