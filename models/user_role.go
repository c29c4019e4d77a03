package models

type UserRole string

const (
	SpaceAdminRole UserRole = "SPACE_ADMIN_ROLE"
	SpaceUserRole  UserRole = "SPACE_USER_ROLE"
)

var roleHumanName = map[UserRole]string{
	SpaceAdminRole: "Администратор",
	SpaceUserRole:  "Рекрутер",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsSpaceAdmin() bool {
	return r == SpaceAdminRole
}

const SystemUser = "Система"
