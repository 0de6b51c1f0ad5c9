package store

import (
	"context"
	"time"

	"github.com/Matoxx01/mikes-backend/internal/model"
)

// Clients returns every client
func (s *Store) Clients(ctx context.Context) ([]model.Client, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var clients []model.Client
	if err := s.db.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, fail("select clients", err)
	}
	return clients, nil
}

// CreateClient inserts a client and returns its generated id
func (s *Store) CreateClient(ctx context.Context, name string) (uint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	client := model.Client{Name: name}
	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return 0, fail("insert client", err)
	}
	return client.ID, nil
}

// RenameClient updates a client's name
func (s *Store) RenameClient(ctx context.Context, clientID uint, name string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Model(&model.Client{}).Where("id = ?", clientID).Update("name", name).Error; err != nil {
		return fail("update client name", err)
	}
	return nil
}

// Nominas returns the nominas of one client
func (s *Store) Nominas(ctx context.Context, clientID uint) ([]model.Nomina, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var nominas []model.Nomina
	if err := s.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&nominas).Error; err != nil {
		return nil, fail("select nominas", err)
	}
	return nominas, nil
}

// CreateNomina inserts a nomina and returns its generated id
func (s *Store) CreateNomina(ctx context.Context, name string, clientID uint) (uint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	nomina := model.Nomina{Name: name, ClientID: clientID}
	if err := s.db.WithContext(ctx).Create(&nomina).Error; err != nil {
		return 0, fail("insert nomina", err)
	}
	return nomina.ID, nil
}

// RenameNomina updates a nomina's name
func (s *Store) RenameNomina(ctx context.Context, nominaID uint, name string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Model(&model.Nomina{}).Where("id = ?", nominaID).Update("name", name).Error; err != nil {
		return fail("update nomina name", err)
	}
	return nil
}

// Users returns the users of one nomina
func (s *Store) Users(ctx context.Context, nominaID uint) ([]model.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var users []model.User
	if err := s.db.WithContext(ctx).Where("nomina_id = ?", nominaID).Find(&users).Error; err != nil {
		return nil, fail("select users", err)
	}
	return users, nil
}

// CreateUser inserts a user and returns its generated id
func (s *Store) CreateUser(ctx context.Context, user model.User) (uint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return 0, fail("insert user", err)
	}
	return user.ID, nil
}

// UpdateUserComment updates a user's comment and records which employee made
// the edit. The signature and its date are only touched when a signature is
// actually provided, so commenting never clears an existing signature.
func (s *Store) UpdateUserComment(ctx context.Context, userID uint, comment string, signature *string, signatureDate *time.Time, performedBy string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	updates := map[string]interface{}{
		"comment":  comment,
		"employee": performedBy,
	}
	if signature != nil && *signature != "" {
		updates["signature"] = *signature
		if signatureDate != nil {
			updates["signature_date"] = *signatureDate
		}
	}

	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return fail("update user comment", err)
	}
	return nil
}

// SearchUsers finds up to three users whose rut, name or last name contains
// the query
func (s *Store) SearchUsers(ctx context.Context, query string) ([]model.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	like := "%" + query + "%"
	var users []model.User
	err := s.db.WithContext(ctx).
		Where("rut LIKE ? OR name LIKE ? OR last_name LIKE ?", like, like, like).
		Limit(3).
		Find(&users).Error
	if err != nil {
		return nil, fail("search users", err)
	}
	return users, nil
}

// Products returns the products of one user
func (s *Store) Products(ctx context.Context, userID uint) ([]model.Product, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var products []model.Product
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&products).Error; err != nil {
		return nil, fail("select products", err)
	}
	return products, nil
}

// AllProducts returns every product
func (s *Store) AllProducts(ctx context.Context) ([]model.Product, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var products []model.Product
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fail("select all products", err)
	}
	return products, nil
}

// CreateProduct inserts a product and returns its generated id
func (s *Store) CreateProduct(ctx context.Context, product model.Product) (uint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return 0, fail("insert product", err)
	}
	return product.ID, nil
}

// UpdateProductQuantity updates a product's quantity
func (s *Store) UpdateProductQuantity(ctx context.Context, productID uint, quantity int) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", productID).Update("quantity", quantity).Error; err != nil {
		return fail("update product quantity", err)
	}
	return nil
}

// UpdateProductSize updates a product's size
func (s *Store) UpdateProductSize(ctx context.Context, productID uint, size string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", productID).Update("size", size).Error; err != nil {
		return fail("update product size", err)
	}
	return nil
}
