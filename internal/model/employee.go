package model

// Employee is a staff account used only for authentication. It is not part
// of the client/nomina/user/product hierarchy.
type Employee struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	Name     string `json:"name" gorm:"type:varchar(255);not null;unique"`
	Password string `json:"-" gorm:"type:varchar(255);not null"`
	Role     string `json:"role" gorm:"type:varchar(50);not null"`
}

// TableName overrides the default pluralized table name
func (Employee) TableName() string {
	return "employee"
}
