package store_test

import (
	"context"
	"testing"

	"github.com/Matoxx01/mikes-backend/internal/model"
	"github.com/Matoxx01/mikes-backend/internal/store"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Employee{Name: "maria", Password: "s3cret", Role: "admin"}).Error)

	employee, err := s.Authenticate(ctx, "maria", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "maria", employee.Name)
	require.Equal(t, "admin", employee.Role)

	_, err = s.Authenticate(ctx, "nobody", "s3cret")
	require.ErrorIs(t, err, store.ErrUnknownName)

	_, err = s.Authenticate(ctx, "maria", "wrong")
	require.ErrorIs(t, err, store.ErrWrongPassword)
}

func TestEmployeeLifecycle(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateEmployee(ctx, "pedro", "clave", "viewer")
	require.NoError(t, err)
	require.NotZero(t, id)

	require.NoError(t, s.UpdateEmployee(ctx, id, "pedro", "nueva", "admin"))

	var employee model.Employee
	require.NoError(t, db.First(&employee, id).Error)
	require.Equal(t, "nueva", employee.Password)
	require.Equal(t, "admin", employee.Role)

	require.NoError(t, s.DeleteEmployee(ctx, id))
	require.Zero(t, count(t, db, &model.Employee{}, "id = ?", id))

	// Deleting an employee that is already gone is a quiet no-op
	require.NoError(t, s.DeleteEmployee(ctx, id))
}
