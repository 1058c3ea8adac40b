package user

// User is an account that can authenticate against the API. The role
// set is resolved and persisted explicitly through join rows; it is
// not an ORM-managed association.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	Roles []Role `gorm:"-"`
}

// Role is shared across users and has an independent lifecycle: it is
// never deleted when a referencing user goes away.
type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

// UserRole is one row of the users-to-roles join table.
type UserRole struct {
	UserID uint `gorm:"primaryKey"`
	RoleID uint `gorm:"primaryKey"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
