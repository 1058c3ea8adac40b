package user

type RoleRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name" binding:"required"`
}

type SaveUserRequest struct {
	Name     string        `json:"name" binding:"required"`
	Password string        `json:"password" binding:"required"`
	Roles    []RoleRequest `json:"roles" binding:"dive"`
}

// ToEntity converts the wire user into its stored form. The password
// is still plaintext at this point; hashing happens in the service.
func (r SaveUserRequest) ToEntity() User {
	roles := make([]Role, len(r.Roles))
	for i, role := range r.Roles {
		roles[i] = Role{ID: role.ID, Name: role.Name}
	}
	return User{
		Name:     r.Name,
		Password: r.Password,
		Roles:    roles,
	}
}
