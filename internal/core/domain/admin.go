package domain

// Admin is an administrator account that may correct time logs and manage
// the employee registry. Corrections are attributed to the acting admin.
type Admin struct {
	AdminID      string `json:"adminID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}

// IntervalPolicy decides how an edit producing clockOut < clockIn is
// handled: rejected outright, or stored with the log flagged.
type IntervalPolicy string

const (
	PolicyStrict  IntervalPolicy = "strict"
	PolicyLenient IntervalPolicy = "lenient"
)

func (p IntervalPolicy) Valid() bool {
	return p == PolicyStrict || p == PolicyLenient
}
