package entity

// User is an account that can own patients. The password hash is never
// serialized.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
