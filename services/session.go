package services

import (
	"github.com/appbook/appbook/models"
)

// Session identifies the authenticated caller. It is resolved once per
// request by the auth middleware and passed explicitly into every
// service operation.
type Session struct {
	UserID uint
	Role   models.Role
}

func (s Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}
