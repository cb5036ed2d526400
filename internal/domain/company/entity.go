package company

import "time"

type Company struct {
	ID              int64
	Name            string
	OwnerID         int64
	Description     *string
	Address         *string
	Phone           *string
	Email           *string
	Website         *string
	TaxNumber       *string
	BusinessLicense *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
