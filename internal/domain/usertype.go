package domain

// UserType distinguishes the two independent session namespaces.
type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeStaff UserType = "staff"
)

// Valid reports whether the value is one of the known user types.
func (t UserType) Valid() bool {
	return t == UserTypeAdmin || t == UserTypeStaff
}

// ResolveUserType applies the slot-priority policy: an admin credential wins
// over a staff credential, and staff is the default when neither slot is
// populated. The staff default is deliberate, staff is the common caller.
func ResolveUserType(hasAdmin, hasStaff bool) UserType {
	switch {
	case hasAdmin:
		return UserTypeAdmin
	case hasStaff:
		return UserTypeStaff
	default:
		return UserTypeStaff
	}
}
