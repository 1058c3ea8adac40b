package domain

// Identity is the resolved view of an authenticated user: the unique
// user name, the stored password hash, and the set of granted
// authorities derived from role names. It is threaded through the
// request context explicitly; there is no ambient security holder.
type Identity struct {
	Username     string
	PasswordHash string
	Authorities  []string
}

// HasAuthority reports whether the identity carries the given role name.
func (i Identity) HasAuthority(name string) bool {
	for _, a := range i.Authorities {
		if a == name {
			return true
		}
	}
	return false
}
