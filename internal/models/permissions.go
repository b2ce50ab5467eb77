package models

import (
	"clubhub/internal/rbac"
)

// PermissionSnapshot is what a client needs to render role-gated UI: the
// caller's current organization, role, and the permissions that role grants.
// Clients treat it as advisory; every operation is re-checked server side.
type PermissionSnapshot struct {
	OrgID       string            `json:"orgId" example:"507f1f77bcf86cd799439012"`
	OrgName     string            `json:"orgName" example:"Northside FC"`
	Role        rbac.Role         `json:"role" example:"coach"`
	Permissions []rbac.Permission `json:"permissions"`
}
