package store_test

import (
	"context"
	"testing"

	"github.com/Matoxx01/mikes-backend/internal/model"
	"github.com/Matoxx01/mikes-backend/internal/store"
	"github.com/Matoxx01/mikes-backend/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// An in-memory sqlite database exists per connection, so the pool must
	// stay at one connection for every statement to see the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return store.New(db, 0), db
}

// seedHierarchy creates a client with one nomina and returns both ids
func seedHierarchy(t *testing.T, db *gorm.DB, clientName, nominaName string) (uint, uint) {
	t.Helper()

	client := model.Client{Name: clientName}
	require.NoError(t, db.Create(&client).Error)

	nomina := model.Nomina{Name: nominaName, ClientID: client.ID}
	require.NoError(t, db.Create(&nomina).Error)

	return client.ID, nomina.ID
}

func seedUser(t *testing.T, db *gorm.DB, rut string, nominaID, clientID uint) uint {
	t.Helper()

	user := model.User{
		Rut:      rut,
		Name:     "Test",
		LastName: "User",
		NominaID: nominaID,
		ClientID: clientID,
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func seedProduct(t *testing.T, db *gorm.DB, userID, nominaID, clientID uint) uint {
	t.Helper()

	product := model.Product{
		SKU:      "SKU-1",
		Name:     "Jacket",
		Quantity: 1,
		UserID:   userID,
		NominaID: nominaID,
		ClientID: clientID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product.ID
}

func count(t *testing.T, db *gorm.DB, m interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var n int64
	tx := db.Model(m)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	require.NoError(t, tx.Count(&n).Error)
	return n
}

func TestCreateAndRenameClient(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateClient(ctx, "Acme")
	require.NoError(t, err)
	require.NotZero(t, id)

	require.NoError(t, s.RenameClient(ctx, id, "Acme Ltd"))

	var client model.Client
	require.NoError(t, db.First(&client, id).Error)
	require.Equal(t, "Acme Ltd", client.Name)
}

func TestNominasScopedToClient(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	clientA, _ := seedHierarchy(t, db, "A", "A-2024")
	clientB, _ := seedHierarchy(t, db, "B", "B-2024")

	nominas, err := s.Nominas(ctx, clientA)
	require.NoError(t, err)
	require.Len(t, nominas, 1)
	require.Equal(t, "A-2024", nominas[0].Name)

	nominas, err = s.Nominas(ctx, clientB)
	require.NoError(t, err)
	require.Len(t, nominas, 1)
	require.Equal(t, "B-2024", nominas[0].Name)
}
