package store

import (
	"context"

	"github.com/Matoxx01/mikes-backend/internal/model"

	"gorm.io/gorm"
)

// DeleteNomina removes a nomina together with everything under it: the
// products of its users, the users themselves, and the nomina row. When the
// client owns no other nomina afterwards the client row is removed in the
// same transaction, so a client never lingers after losing its last batch.
func (s *Store) DeleteNomina(ctx context.Context, nominaID, clientID uint) error {
	return s.transact(ctx, "delete nomina", func(ctx context.Context, tx *gorm.DB) error {
		var userIDs []uint
		if err := tx.Model(&model.User{}).Where("nomina_id = ?", nominaID).Pluck("id", &userIDs).Error; err != nil {
			return fail("select nomina user ids", err)
		}

		// An IN list needs at least one element; a nomina without users
		// has no products to sweep.
		if len(userIDs) > 0 {
			if err := tx.Where("user_id IN ?", userIDs).Delete(&model.Product{}).Error; err != nil {
				return fail("delete nomina products", err)
			}
		}

		if err := tx.Where("nomina_id = ?", nominaID).Delete(&model.User{}).Error; err != nil {
			return fail("delete nomina users", err)
		}

		if err := tx.Where("id = ?", nominaID).Delete(&model.Nomina{}).Error; err != nil {
			return fail("delete nomina", err)
		}

		// Only this client's nominas count when deciding whether the
		// client itself goes too.
		var remaining int64
		if err := tx.Model(&model.Nomina{}).Where("client_id = ?", clientID).Count(&remaining).Error; err != nil {
			return fail("count remaining nominas", err)
		}

		if remaining == 0 {
			if err := tx.Where("id = ?", clientID).Delete(&model.Client{}).Error; err != nil {
				return fail("delete orphaned client", err)
			}
		}

		return nil
	})
}

// DeleteUser removes a user and its products. It deliberately does not touch
// the owning nomina, even when this was its last user: users are removed
// individually without collapsing the batch.
func (s *Store) DeleteUser(ctx context.Context, userID uint) error {
	return s.transact(ctx, "delete user", func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Product{}).Error; err != nil {
			return fail("delete user products", err)
		}

		if err := tx.Where("id = ?", userID).Delete(&model.User{}).Error; err != nil {
			return fail("delete user", err)
		}

		return nil
	})
}

// DeleteClient removes a client and every dependent row, sweeping each table
// by its denormalized client id. Deleting a client that does not exist is a
// no-op: every step simply affects zero rows.
func (s *Store) DeleteClient(ctx context.Context, clientID uint) error {
	return s.transact(ctx, "delete client", func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", clientID).Delete(&model.Product{}).Error; err != nil {
			return fail("delete client products", err)
		}

		if err := tx.Where("client_id = ?", clientID).Delete(&model.User{}).Error; err != nil {
			return fail("delete client users", err)
		}

		if err := tx.Where("client_id = ?", clientID).Delete(&model.Nomina{}).Error; err != nil {
			return fail("delete client nominas", err)
		}

		if err := tx.Where("id = ?", clientID).Delete(&model.Client{}).Error; err != nil {
			return fail("delete client", err)
		}

		return nil
	})
}

// DeleteProduct removes a single product. Products have no descendants, so
// no transaction is needed.
func (s *Store) DeleteProduct(ctx context.Context, productID uint) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Where("id = ?", productID).Delete(&model.Product{}).Error; err != nil {
		return fail("delete product", err)
	}
	return nil
}
