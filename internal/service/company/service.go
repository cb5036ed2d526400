package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizgrid/bizgrid-backend-go/internal/domain/company"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/employee"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/role"
	"github.com/bizgrid/bizgrid-backend-go/internal/domain/user"
	"github.com/bizgrid/bizgrid-backend-go/internal/fixtures"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/database"
	"github.com/bizgrid/bizgrid-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type CompanyServiceImpl struct {
	db *database.DB
	company.CompanyRepository
	user.UserRepository
	roleRepo     role.RoleRepository
	employeeRepo employee.EmployeeRepository
}

func NewCompanyService(
	db *database.DB,
	companyRepository company.CompanyRepository,
	userRepository user.UserRepository,
	roleRepository role.RoleRepository,
	employeeRepository employee.EmployeeRepository,
) company.CompanyService {
	return &CompanyServiceImpl{
		db:                db,
		CompanyRepository: companyRepository,
		UserRepository:    userRepository,
		roleRepo:          roleRepository,
		employeeRepo:      employeeRepository,
	}
}

// List implements company.CompanyService. Owned companies come first; the
// employee set is merged in without duplicating ids.
func (c *CompanyServiceImpl) List(ctx context.Context, userID int64) ([]company.Company, error) {
	owned, err := c.CompanyRepository.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned companies: %w", err)
	}

	memberOf, err := c.CompanyRepository.ListByEmployee(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member companies: %w", err)
	}

	seen := make(map[int64]bool, len(owned))
	for _, oc := range owned {
		seen[oc.ID] = true
	}

	all := owned
	for _, ec := range memberOf {
		if !seen[ec.ID] {
			all = append(all, ec)
			seen[ec.ID] = true
		}
	}

	return all, nil
}

// Create implements company.CompanyService. The company row, its default
// roles and the owner's admin employee row are written in one transaction so
// a half-created tenant is never observable.
func (c *CompanyServiceImpl) Create(ctx context.Context, userID int64, req company.CreateCompanyRequest) (company.Company, error) {
	var newCompany company.Company

	err := postgresql.WithTransaction(ctx, c.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := c.CompanyRepository.ExistsByNameExcept(txCtx, req.Name, 0)
		if err != nil {
			return fmt.Errorf("failed to check company name: %w", err)
		}
		if exists {
			return company.ErrCompanyNameExists
		}

		newCompany, err = c.CompanyRepository.Create(txCtx, company.Company{
			Name:            req.Name,
			OwnerID:         userID,
			Description:     req.Description,
			Address:         req.Address,
			Phone:           req.Phone,
			Email:           req.Email,
			Website:         req.Website,
			TaxNumber:       req.TaxNumber,
			BusinessLicense: req.BusinessLicense,
		})
		if err != nil {
			// A concurrent create with the same name loses the race here and
			// hits the uniqueness constraint.
			if isUniqueViolation(err) {
				return company.ErrCompanyNameExists
			}
			return fmt.Errorf("failed to create company: %w", err)
		}

		if err := c.roleRepo.CreateMany(txCtx, fixtures.DefaultRoles(newCompany.ID)); err != nil {
			return fmt.Errorf("failed to seed default roles: %w", err)
		}

		adminRole, err := c.roleRepo.GetByName(txCtx, newCompany.ID, role.NameAdmin)
		if err != nil {
			return fmt.Errorf("failed to get admin role: %w", err)
		}

		if _, err := c.employeeRepo.Create(txCtx, employee.Employee{
			UserID:    userID,
			CompanyID: newCompany.ID,
			RoleID:    adminRole.ID,
		}); err != nil {
			return fmt.Errorf("failed to create owner employee: %w", err)
		}

		return nil
	})
	if err != nil {
		return company.Company{}, err
	}

	return newCompany, nil
}

// Update implements company.CompanyService. Ownership is mandatory: admins
// who are not the owner cannot edit the company profile.
func (c *CompanyServiceImpl) Update(ctx context.Context, userID int64, req company.UpdateCompanyRequest) (company.Company, error) {
	_, err := c.CompanyRepository.GetOwned(ctx, req.ID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrNotCompanyOwner
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	exists, err := c.CompanyRepository.ExistsByNameExcept(ctx, req.Name, req.ID)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to check company name: %w", err)
	}
	if exists {
		return company.Company{}, company.ErrCompanyNameExists
	}

	updated, err := c.CompanyRepository.Update(ctx, req.ID, req)
	if err != nil {
		if isUniqueViolation(err) {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("failed to update company: %w", err)
	}

	return updated, nil
}

// Delete implements company.CompanyService. Rows are removed in dependency
// order inside one transaction: employees, role permissions, roles, company.
func (c *CompanyServiceImpl) Delete(ctx context.Context, userID int64, companyID int64) error {
	_, err := c.CompanyRepository.GetOwned(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrNotCompanyOwner
		}
		return fmt.Errorf("failed to get company: %w", err)
	}

	return postgresql.WithTransaction(ctx, c.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := c.employeeRepo.DeleteByCompany(txCtx, companyID); err != nil {
			return fmt.Errorf("failed to delete employees: %w", err)
		}
		if err := c.roleRepo.DeletePermissionsByCompany(txCtx, companyID); err != nil {
			return fmt.Errorf("failed to delete role permissions: %w", err)
		}
		if err := c.roleRepo.DeleteByCompany(txCtx, companyID); err != nil {
			return fmt.Errorf("failed to delete roles: %w", err)
		}
		if err := c.CompanyRepository.Delete(txCtx, companyID); err != nil {
			return fmt.Errorf("failed to delete company: %w", err)
		}
		return nil
	})
}

// GetCurrent implements company.CompanyService.
func (c *CompanyServiceImpl) GetCurrent(ctx context.Context, userID int64) (*company.Company, error) {
	userData, err := c.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if userData.CurrentCompanyID == nil {
		return nil, nil
	}

	current, err := c.CompanyRepository.GetByID(ctx, *userData.CurrentCompanyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Stale pointer after a delete; treat as no selection.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current company: %w", err)
	}

	return &current, nil
}

// SetCurrent implements company.CompanyService. Membership is re-derived from
// the store; the current-company pointer itself never grants access.
func (c *CompanyServiceImpl) SetCurrent(ctx context.Context, userID int64, companyID int64) (company.Company, error) {
	ok, err := c.CompanyRepository.IsOwnerOrEmployee(ctx, companyID, userID)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to check company membership: %w", err)
	}
	if !ok {
		return company.Company{}, company.ErrNotCompanyMember
	}

	if err := c.UserRepository.SetCurrentCompany(ctx, userID, companyID); err != nil {
		return company.Company{}, fmt.Errorf("failed to set current company: %w", err)
	}

	current, err := c.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return current, nil
}
