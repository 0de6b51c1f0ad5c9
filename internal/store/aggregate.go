package store

import (
	"context"
	"time"

	"github.com/Matoxx01/mikes-backend/internal/model"
)

// UserWithProducts is one user of a nomina together with all of its
// products. Products is never nil; a user without products carries an empty
// slice.
type UserWithProducts struct {
	model.User
	Products []model.Product `json:"products"`
}

// ExportRow is one flat row of the spreadsheet export: user fields joined
// with one product, or with null product columns when the user has none.
type ExportRow struct {
	Rut         string  `json:"rut"`
	Username    string  `json:"username"`
	LastName    string  `json:"lastName"`
	Area        string  `json:"area"`
	Signature   string  `json:"signature"`
	SKU         *string `json:"sku"`
	ProductName *string `json:"productName"`
	Color       *string `json:"color"`
	Quantity    *int    `json:"quantity"`
	Size        *string `json:"size"`
}

// ReportResult summarizes signature progress for one nomina
type ReportResult struct {
	Total  int64 `json:"total"`
	Signed int64 `json:"signed"`
}

// userProductRow is the flat shape of the left-join the aggregation folds.
// Product columns are pointers so the all-null row of a user without
// products is distinguishable.
type userProductRow struct {
	UserID        uint
	Rut           string
	Name          string
	LastName      string
	Sex           string
	Area          string
	Service       string
	Center        string
	Signature     string
	SignatureDate *time.Time
	Comment       string
	Employee      string
	NominaID      uint
	ClientID      uint
	ProductID     *uint
	SKU           *string
	ProductName   *string
	Color         *string
	Quantity      *int
	Size          *string
}

// UsersWithProducts returns every user of a nomina with its products nested,
// from a single left-join query. Rows are folded by user id in first-seen
// order; the join's null product row for a product-less user contributes
// nothing but the user itself.
func (s *Store) UsersWithProducts(ctx context.Context, nominaID uint) ([]UserWithProducts, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var rows []userProductRow
	err := s.db.WithContext(ctx).
		Table("app_user AS u").
		Select(`u.id AS user_id, u.rut, u.name, u.last_name, u.sex, u.area, u.service, u.center,
			u.signature, u.signature_date, u.comment, u.employee, u.nomina_id, u.client_id,
			p.id AS product_id, p.sku, p.name AS product_name, p.color, p.quantity, p.size`).
		Joins("LEFT JOIN product AS p ON p.user_id = u.id").
		Where("u.nomina_id = ?", nominaID).
		Order("u.id, p.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fail("select users with products", err)
	}

	byID := make(map[uint]*UserWithProducts, len(rows))
	ordered := make([]*UserWithProducts, 0, len(rows))
	for _, row := range rows {
		entry, ok := byID[row.UserID]
		if !ok {
			entry = &UserWithProducts{
				User: model.User{
					ID:            row.UserID,
					Rut:           row.Rut,
					Name:          row.Name,
					LastName:      row.LastName,
					Sex:           row.Sex,
					Area:          row.Area,
					Service:       row.Service,
					Center:        row.Center,
					Signature:     row.Signature,
					SignatureDate: row.SignatureDate,
					Comment:       row.Comment,
					Employee:      row.Employee,
					NominaID:      row.NominaID,
					ClientID:      row.ClientID,
				},
				Products: []model.Product{},
			}
			byID[row.UserID] = entry
			ordered = append(ordered, entry)
		}

		if row.ProductID == nil {
			continue
		}
		entry.Products = append(entry.Products, model.Product{
			ID:       *row.ProductID,
			SKU:      deref(row.SKU),
			Name:     deref(row.ProductName),
			Color:    deref(row.Color),
			Quantity: derefInt(row.Quantity),
			Size:     deref(row.Size),
			UserID:   row.UserID,
			NominaID: row.NominaID,
			ClientID: row.ClientID,
		})
	}

	result := make([]UserWithProducts, 0, len(ordered))
	for _, entry := range ordered {
		result = append(result, *entry)
	}
	return result, nil
}

// ExportRows returns the flat user-product rows the spreadsheet export is
// built from, ordered by rut.
func (s *Store) ExportRows(ctx context.Context, nominaID uint) ([]ExportRow, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var rows []ExportRow
	err := s.db.WithContext(ctx).
		Table("app_user AS u").
		Select(`u.rut, u.name AS username, u.last_name, u.area, u.signature,
			p.sku, p.name AS product_name, p.color, p.quantity, p.size`).
		Joins("LEFT JOIN product AS p ON p.user_id = u.id").
		Where("u.nomina_id = ?", nominaID).
		Order("u.rut").
		Scan(&rows).Error
	if err != nil {
		return nil, fail("select export rows", err)
	}
	return rows, nil
}

// Report counts a nomina's users and how many of them have signed
func (s *Store) Report(ctx context.Context, nominaID uint) (ReportResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result ReportResult
	db := s.db.WithContext(ctx)

	if err := db.Model(&model.User{}).Where("nomina_id = ?", nominaID).Count(&result.Total).Error; err != nil {
		return ReportResult{}, fail("count nomina users", err)
	}
	if err := db.Model(&model.User{}).Where("nomina_id = ? AND signature <> ''", nominaID).Count(&result.Signed).Error; err != nil {
		return ReportResult{}, fail("count signed users", err)
	}
	return result, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
