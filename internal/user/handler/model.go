package handler

import (
	"github.com/itisal/itisal-backend/internal/user"
)

type PermissionsRequest struct {
	AllowStoreSetup      bool `json:"allowStoreSetup"`
	AllowRegionSetup     bool `json:"allowRegionSetup"`
	AllowNewCustomer     bool `json:"allowNewCustomer"`
	AllowItemGroupsSetup bool `json:"allowItemGroupsSetup"`
	AllowUserSetup       bool `json:"allowUserSetup"`
}

type CreateUserRequest struct {
	Username    string             `json:"username" validate:"required,min=3,max=30"`
	FullName    string             `json:"fullName" validate:"required"`
	Password    string             `json:"password" validate:"required,min=6"`
	IsAdmin     bool               `json:"isAdmin"`
	Permissions PermissionsRequest `json:"permissions"`
}

func (cur *CreateUserRequest) ToDomain() user.User {
	return user.User{
		Username: cur.Username,
		FullName: cur.FullName,
		IsAdmin:  cur.IsAdmin,
		Permissions: user.Permissions{
			AllowStoreSetup:      cur.Permissions.AllowStoreSetup,
			AllowRegionSetup:     cur.Permissions.AllowRegionSetup,
			AllowNewCustomer:     cur.Permissions.AllowNewCustomer,
			AllowItemGroupsSetup: cur.Permissions.AllowItemGroupsSetup,
			AllowUserSetup:       cur.Permissions.AllowUserSetup,
		},
	}
}

type UpdateUserRequest struct {
	Username    string             `json:"username" validate:"required,min=3,max=30"`
	FullName    string             `json:"fullName" validate:"required"`
	IsAdmin     bool               `json:"isAdmin"`
	Permissions PermissionsRequest `json:"permissions"`
}

func (uur *UpdateUserRequest) ToDomain(id string) user.User {
	return user.User{
		ID:       id,
		Username: uur.Username,
		FullName: uur.FullName,
		IsAdmin:  uur.IsAdmin,
		Permissions: user.Permissions{
			AllowStoreSetup:      uur.Permissions.AllowStoreSetup,
			AllowRegionSetup:     uur.Permissions.AllowRegionSetup,
			AllowNewCustomer:     uur.Permissions.AllowNewCustomer,
			AllowItemGroupsSetup: uur.Permissions.AllowItemGroupsSetup,
			AllowUserSetup:       uur.Permissions.AllowUserSetup,
		},
	}
}

type SetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type UserResponse struct {
	User user.User `json:"user"`
}

type UsersResponse struct {
	Users []user.User `json:"users"`
}
