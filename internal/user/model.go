package user

import "time"

// Permissions lists the admin screens a user may open. An admin user
// passes every check regardless of the individual flags.
type Permissions struct {
	AllowStoreSetup      bool `json:"allowStoreSetup"`
	AllowRegionSetup     bool `json:"allowRegionSetup"`
	AllowNewCustomer     bool `json:"allowNewCustomer"`
	AllowItemGroupsSetup bool `json:"allowItemGroupsSetup"`
	AllowUserSetup       bool `json:"allowUserSetup"`
}

type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	FullName     string      `json:"fullName"`
	IsAdmin      bool        `json:"isAdmin"`
	Permissions  Permissions `json:"permissions"`
	PasswordHash []byte      `json:"-"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// Can reports whether the user may use the screen guarded by check.
// check receives the effective permission set.
func (u User) Can(check func(Permissions) bool) bool {
	if u.IsAdmin {
		return true
	}

	return check(u.Permissions)
}
