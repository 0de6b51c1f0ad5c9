package model

import "time"

// User is an individual tracked within one nomina. The rut is the natural
// key and must be unique within one (nomina, client) pair; the bulk import
// pipeline depends on that to recover generated ids after batched inserts.
//
// ClientID is a denormalized copy of the owning nomina's client id. Nothing
// in the schema re-validates it; the workflows that write users are expected
// to keep it consistent.
type User struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	Rut           string     `json:"rut" gorm:"type:varchar(20);not null;uniqueIndex:idx_user_rut_scope"`
	Name          string     `json:"name" gorm:"type:varchar(255);not null"`
	LastName      string     `json:"lastName" gorm:"type:varchar(255);not null"`
	Sex           string     `json:"sex" gorm:"type:varchar(20)"`
	Area          string     `json:"area" gorm:"type:varchar(255)"`
	Service       string     `json:"service" gorm:"type:varchar(255)"`
	Center        string     `json:"center" gorm:"type:varchar(255)"`
	Signature     string     `json:"signature" gorm:"type:text"`
	SignatureDate *time.Time `json:"signatureDate,omitempty"`
	Comment       string     `json:"comment" gorm:"type:text"`
	Employee      string     `json:"employee" gorm:"type:varchar(255)"` // name of the last employee who edited this user
	NominaID      uint       `json:"nominaId" gorm:"index;not null;uniqueIndex:idx_user_rut_scope"`
	ClientID      uint       `json:"clientId" gorm:"index;not null;uniqueIndex:idx_user_rut_scope"`
}

// TableName keeps the legacy table name ("user" is reserved in most dialects)
func (User) TableName() string {
	return "app_user"
}
