package users

// Profile is the read-facing projection of an account. It deliberately has no
// password field.
type Profile struct {
	ID        string
	Email     string
	Name      string
	LoggedIn  bool
	CreatedAt string
	UpdatedAt string
}

// Record is one row of the backing file. Timestamps are kept in their textual
// form; UpdatedAt is empty for accounts that were never updated.
type Record struct {
	ID        string
	Email     string
	Name      string
	Password  string // bcrypt hash, never the plaintext
	CreatedAt string
	UpdatedAt string

	// LoggedIn is session state only. It is never written to the file and
	// is always false after a reload.
	LoggedIn bool
}

// entity rebuilds the in-memory entity for this row.
func (r *Record) entity() (*User, error) {
	u, err := Restore(r.Email, r.Name, r.ID, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.passwordHash = r.Password
	u.loggedIn = r.LoggedIn
	return u, nil
}

// row returns the CSV cells in persisted column order.
func (r *Record) row() []string {
	return []string{r.ID, r.Email, r.Name, r.Password, r.CreatedAt, r.UpdatedAt}
}
