package models

// Employee represents a row of the employees table.
// Password always holds the hex digest of the plaintext, never the plaintext itself.
type Employee struct {
	ID       int     `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Password string  `json:"-"`
	Salary   float64 `json:"salary"`
	Dept     string  `json:"dept"`
}

// NewEmployee carries the registration input. Password is plaintext here and is hashed by the repository.
type NewEmployee struct {
	Email    string
	Name     string
	Password string
	Salary   float64
	Dept     string
}

// EmployeeUpdate is a partial update. A nil field is left unchanged.
type EmployeeUpdate struct {
	Name     *string
	Salary   *float64
	Dept     *string
	Password *string // plaintext
}

// IsEmpty reports whether the update carries no fields at all.
func (u EmployeeUpdate) IsEmpty() bool {
	return u.Name == nil && u.Salary == nil && u.Dept == nil && u.Password == nil
}
