package models

// Admin is the database representation of an administrator account.
type Admin struct {
	AdminID      string `db:"admin_id"`
	Username     string `db:"username"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
