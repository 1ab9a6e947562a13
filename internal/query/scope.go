package query

// Owned is implemented by records that belong to a single user.
type Owned interface {
	// Owner returns the ID of the owning user.
	Owner() string
}

// Scope describes which records a caller may see. Managers get
// cross-user visibility; participants only see their own records.
type Scope struct {
	all     bool
	ownerID string
}

// ScopeAll returns a scope with cross-user visibility.
func ScopeAll() Scope {
	return Scope{all: true}
}

// ScopeOwned returns a scope limited to records owned by userID.
func ScopeOwned(userID string) Scope {
	return Scope{ownerID: userID}
}

// Allows reports whether a record owned by ownerID is visible.
func (s Scope) Allows(ownerID string) bool {
	return s.all || s.ownerID == ownerID
}

// InScope returns the records visible under the scope, preserving order.
func InScope[T Owned](records []T, scope Scope) []T {
	if scope.all {
		return records
	}
	visible := make([]T, 0, len(records))
	for _, r := range records {
		if scope.Allows(r.Owner()) {
			visible = append(visible, r)
		}
	}
	return visible
}
