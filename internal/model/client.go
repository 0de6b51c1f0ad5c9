package model

// Client is the root of the roster hierarchy. A client owns zero or more
// nominas; the deletion workflows remove a client once its last nomina is
// gone, so an empty client only exists when it was created standalone.
type Client struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

// TableName overrides the default pluralized table name
func (Client) TableName() string {
	return "client"
}

// Nomina is a named payroll batch owned by exactly one client.
type Nomina struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	Name     string `json:"name" gorm:"type:varchar(255);not null"`
	ClientID uint   `json:"clientId" gorm:"index;not null"`
}

// TableName overrides the default pluralized table name
func (Nomina) TableName() string {
	return "nomina"
}
