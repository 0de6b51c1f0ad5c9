package store

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/Matoxx01/mikes-backend/internal/model"

	"gorm.io/gorm"
)

// Authenticate checks an employee's name and password. It distinguishes an
// unknown name from a wrong password so the boundary can report which one
// failed, matching the login contract.
func (s *Store) Authenticate(ctx context.Context, name, password string) (*model.Employee, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var employee model.Employee
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownName
	}
	if err != nil {
		return nil, fail("select employee by name", err)
	}

	if subtle.ConstantTimeCompare([]byte(employee.Password), []byte(password)) != 1 {
		return nil, ErrWrongPassword
	}
	return &employee, nil
}

// Employees returns every employee account
func (s *Store) Employees(ctx context.Context) ([]model.Employee, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var employees []model.Employee
	if err := s.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, fail("select employees", err)
	}
	return employees, nil
}

// CreateEmployee inserts an employee and returns its generated id
func (s *Store) CreateEmployee(ctx context.Context, name, password, role string) (uint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	employee := model.Employee{Name: name, Password: password, Role: role}
	if err := s.db.WithContext(ctx).Create(&employee).Error; err != nil {
		return 0, fail("insert employee", err)
	}
	return employee.ID, nil
}

// UpdateEmployee replaces an employee's name, password and role
func (s *Store) UpdateEmployee(ctx context.Context, employeeID uint, name, password, role string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	updates := map[string]interface{}{
		"name":     name,
		"password": password,
		"role":     role,
	}
	if err := s.db.WithContext(ctx).Model(&model.Employee{}).Where("id = ?", employeeID).Updates(updates).Error; err != nil {
		return fail("update employee", err)
	}
	return nil
}

// DeleteEmployee removes an employee account
func (s *Store) DeleteEmployee(ctx context.Context, employeeID uint) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Where("id = ?", employeeID).Delete(&model.Employee{}).Error; err != nil {
		return fail("delete employee", err)
	}
	return nil
}
