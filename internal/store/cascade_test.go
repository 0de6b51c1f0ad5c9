package store_test

import (
	"context"
	"testing"

	"github.com/Matoxx01/mikes-backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestDeleteNominaCascadesToClient(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	// Client with a single nomina holding two users, one product each
	clientID, nominaID := seedHierarchy(t, db, "Acme", "2024-Q1")
	userA := seedUser(t, db, "11111111-1", nominaID, clientID)
	userB := seedUser(t, db, "22222222-2", nominaID, clientID)
	seedProduct(t, db, userA, nominaID, clientID)
	seedProduct(t, db, userB, nominaID, clientID)

	require.NoError(t, s.DeleteNomina(ctx, nominaID, clientID))

	require.Zero(t, count(t, db, &model.User{}, "nomina_id = ?", nominaID))
	require.Zero(t, count(t, db, &model.Product{}, "user_id IN ?", []uint{userA, userB}))
	require.Zero(t, count(t, db, &model.Nomina{}, "id = ?", nominaID))
	// It was the client's only nomina, so the client goes too
	require.Zero(t, count(t, db, &model.Client{}, "id = ?", clientID))
}

func TestDeleteNominaKeepsClientWithRemainingNominas(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	clientID, nominaID := seedHierarchy(t, db, "Acme", "2024-Q1")
	other := model.Nomina{Name: "2024-Q2", ClientID: clientID}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, s.DeleteNomina(ctx, nominaID, clientID))

	require.Zero(t, count(t, db, &model.Nomina{}, "id = ?", nominaID))
	require.EqualValues(t, 1, count(t, db, &model.Nomina{}, "client_id = ?", clientID))
	require.EqualValues(t, 1, count(t, db, &model.Client{}, "id = ?", clientID))
}

func TestDeleteNominaOnlyCountsOwnClientsNominas(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	clientID, nominaID := seedHierarchy(t, db, "Acme", "2024-Q1")
	otherClient, otherNomina := seedHierarchy(t, db, "Globex", "2024-Q1")

	require.NoError(t, s.DeleteNomina(ctx, nominaID, clientID))

	// The other client's nomina must not keep this client alive, and must
	// itself survive untouched
	require.Zero(t, count(t, db, &model.Client{}, "id = ?", clientID))
	require.EqualValues(t, 1, count(t, db, &model.Nomina{}, "id = ?", otherNomina))
	require.EqualValues(t, 1, count(t, db, &model.Client{}, "id = ?", otherClient))
}

func TestDeleteNominaWithoutUsers(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	clientID, nominaID := seedHierarchy(t, db, "Acme", "empty")

	// No users means no product sweep; the workflow must not emit an
	// empty IN list
	require.NoError(t, s.DeleteNomina(ctx, nominaID, clientID))
	require.Zero(t, count(t, db, &model.Nomina{}, "id = ?", nominaID))
	require.Zero(t, count(t, db, &model.Client{}, "id = ?", clientID))
}

func TestDeleteMissingNominaIsNoOp(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteNomina(ctx, 9999, 9999))
	require.Zero(t, count(t, db, &model.Nomina{}, ""))
}

func TestDeleteUserKeepsNomina(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	clientID, nominaID := seedHierarchy(t, db, "Acme", "2024-Q1")
	userID := seedUser(t, db, "11111111-1", nominaID, clientID)
	seedProduct(t, db, userID, nominaID, clientID)

	require.NoError(t, s.DeleteUser(ctx, userID))

	require.Zero(t, count(t, db, &model.User{}, "id = ?", userID))
	require.Zero(t, count(t, db, &model.Product{}, "user_id = ?", userID))
	// Deleting the last user never collapses the batch
	require.EqualValues(t, 1, count(t, db, &model.Nomina{}, "id = ?", nominaID))
	require.EqualValues(t, 1, count(t, db, &model.Client{}, "id = ?", clientID))
}

func TestDeleteMissingUserIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.DeleteUser(context.Background(), 4242))
}

func TestDeleteClientRemovesEverything(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	clientID, nominaID := seedHierarchy(t, db, "Acme", "2024-Q1")
	second := model.Nomina{Name: "2024-Q2", ClientID: clientID}
	require.NoError(t, db.Create(&second).Error)
	userA := seedUser(t, db, "11111111-1", nominaID, clientID)
	userB := seedUser(t, db, "22222222-2", second.ID, clientID)
	seedProduct(t, db, userA, nominaID, clientID)
	seedProduct(t, db, userB, second.ID, clientID)

	// An unrelated client must survive the sweep
	otherClient, otherNomina := seedHierarchy(t, db, "Globex", "2024-Q1")
	otherUser := seedUser(t, db, "33333333-3", otherNomina, otherClient)
	seedProduct(t, db, otherUser, otherNomina, otherClient)

	require.NoError(t, s.DeleteClient(ctx, clientID))

	require.Zero(t, count(t, db, &model.Product{}, "client_id = ?", clientID))
	require.Zero(t, count(t, db, &model.User{}, "client_id = ?", clientID))
	require.Zero(t, count(t, db, &model.Nomina{}, "client_id = ?", clientID))
	require.Zero(t, count(t, db, &model.Client{}, "id = ?", clientID))

	require.EqualValues(t, 1, count(t, db, &model.Client{}, "id = ?", otherClient))
	require.EqualValues(t, 1, count(t, db, &model.User{}, "client_id = ?", otherClient))
	require.EqualValues(t, 1, count(t, db, &model.Product{}, "client_id = ?", otherClient))
}

func TestDeleteMissingClientIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.DeleteClient(context.Background(), 4242))
}

func TestDeleteProduct(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	clientID, nominaID := seedHierarchy(t, db, "Acme", "2024-Q1")
	userID := seedUser(t, db, "11111111-1", nominaID, clientID)
	productID := seedProduct(t, db, userID, nominaID, clientID)

	require.NoError(t, s.DeleteProduct(ctx, productID))
	require.Zero(t, count(t, db, &model.Product{}, "id = ?", productID))
	// The owning user stays
	require.EqualValues(t, 1, count(t, db, &model.User{}, "id = ?", userID))
}
