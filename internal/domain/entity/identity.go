package entity

import "github.com/google/uuid"

// AuthenticatedContext is the caller identity extracted from a verified token.
// Handlers pass it explicitly to every use case that acts on behalf of the caller.
type AuthenticatedContext struct {
	UserID uuid.UUID
	Email  string
	Type   UserType
}

// IsAdmin reports whether the caller is an administrator.
func (a AuthenticatedContext) IsAdmin() bool {
	return a.Type == UserTypeAdmin
}

// CanManage reports whether the caller owns the resource or is an administrator.
func (a AuthenticatedContext) CanManage(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.UserID == ownerID
}
