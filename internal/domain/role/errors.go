package role

import "errors"

var (
	ErrRoleNotFound       = errors.New("role not found")
	ErrDefaultRoleMissing = errors.New("default role missing for company")
)
