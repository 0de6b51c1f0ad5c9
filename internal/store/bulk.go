package store

import (
	"context"
	"fmt"

	"github.com/Matoxx01/mikes-backend/internal/model"

	"gorm.io/gorm"
)

// Chunk sizes for the bulk import pipeline. Multi-row inserts and IN-list
// lookups are bounded so a large import never produces an unbounded single
// statement.
const (
	userInsertChunkSize    = 500
	rutLookupChunkSize     = 1000
	productInsertChunkSize = 1000
)

// BulkUser is one user entry of a bulk import payload. Optional string
// fields default to empty.
type BulkUser struct {
	Rut      string        `json:"rut"`
	Name     string        `json:"name"`
	LastName string        `json:"lastName"`
	Sex      string        `json:"sex"`
	Area     string        `json:"area"`
	Service  string        `json:"service"`
	Center   string        `json:"center"`
	Products []BulkProduct `json:"products"`
}

// BulkProduct is one product entry under a bulk import user
type BulkProduct struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
	SKU      string `json:"sku"`
}

// BulkImportResult reports exactly how many rows a bulk import inserted
type BulkImportResult struct {
	InsertedUsers    int `json:"insertedUsers"`
	InsertedProducts int `json:"insertedProducts"`
}

// BulkImport inserts a batch of users and their products under one nomina in
// a single transaction.
//
// Because a batched multi-row insert does not reliably report a generated id
// per row, the pipeline inserts the users first and then recovers their ids
// with a lookup keyed on rut within the nomina+client scope. That recovery
// only works while ruts are unique inside the scope; two equal ruts would
// collapse onto one id, so duplicates in the input are rejected up front and
// the schema keeps a unique index on (rut, nomina_id, client_id). Any rut
// that cannot be mapped back fails the whole import with a ResolutionError
// and rolls the inserted users back out.
func (s *Store) BulkImport(ctx context.Context, nominaID, clientID uint, users []BulkUser) (BulkImportResult, error) {
	var result BulkImportResult

	if nominaID == 0 || clientID == 0 {
		return result, fmt.Errorf("%w: nominaId and clientId are required", ErrInvalidPayload)
	}
	seen := make(map[string]struct{}, len(users))
	for i, u := range users {
		if u.Rut == "" {
			return result, fmt.Errorf("%w: user %d has no rut", ErrInvalidPayload, i)
		}
		if _, dup := seen[u.Rut]; dup {
			return result, &ResolutionError{Rut: u.Rut}
		}
		seen[u.Rut] = struct{}{}
	}

	// Nothing to do; do not even open a transaction.
	if len(users) == 0 {
		return result, nil
	}

	err := s.transact(ctx, "bulk import", func(ctx context.Context, tx *gorm.DB) error {
		userRows := make([]model.User, 0, len(users))
		for _, u := range users {
			userRows = append(userRows, model.User{
				Rut:      u.Rut,
				Name:     u.Name,
				LastName: u.LastName,
				Sex:      u.Sex,
				Area:     u.Area,
				Service:  u.Service,
				Center:   u.Center,
				NominaID: nominaID,
				ClientID: clientID,
			})
		}

		if err := tx.CreateInBatches(&userRows, userInsertChunkSize).Error; err != nil {
			return fail("insert users", err)
		}

		idByRut, err := s.resolveUserIDs(tx, nominaID, clientID, users)
		if err != nil {
			return err
		}

		productRows := make([]model.Product, 0)
		for _, u := range users {
			userID, ok := idByRut[u.Rut]
			if !ok {
				return &ResolutionError{Rut: u.Rut}
			}
			for _, p := range u.Products {
				productRows = append(productRows, model.Product{
					SKU:      p.SKU,
					Name:     p.Name,
					Color:    p.Color,
					Quantity: p.Quantity,
					Size:     p.Size,
					UserID:   userID,
					NominaID: nominaID,
					ClientID: clientID,
				})
			}
		}

		if len(productRows) > 0 {
			if err := tx.CreateInBatches(&productRows, productInsertChunkSize).Error; err != nil {
				return fail("insert products", err)
			}
		}

		result.InsertedUsers = len(userRows)
		result.InsertedProducts = len(productRows)
		return nil
	})
	if err != nil {
		return BulkImportResult{}, err
	}
	return result, nil
}

// resolveUserIDs maps every input rut to the id generated for it, looking the
// rows up in bounded chunks scoped to the nomina and client
func (s *Store) resolveUserIDs(tx *gorm.DB, nominaID, clientID uint, users []BulkUser) (map[string]uint, error) {
	ruts := make([]string, 0, len(users))
	for _, u := range users {
		ruts = append(ruts, u.Rut)
	}

	idByRut := make(map[string]uint, len(ruts))
	for start := 0; start < len(ruts); start += rutLookupChunkSize {
		end := start + rutLookupChunkSize
		if end > len(ruts) {
			end = len(ruts)
		}

		var rows []struct {
			ID  uint
			Rut string
		}
		err := tx.Model(&model.User{}).
			Select("id", "rut").
			Where("rut IN ? AND nomina_id = ? AND client_id = ?", ruts[start:end], nominaID, clientID).
			Find(&rows).Error
		if err != nil {
			return nil, fail("resolve user ids", err)
		}

		for _, row := range rows {
			idByRut[row.Rut] = row.ID
		}
	}

	return idByRut, nil
}
