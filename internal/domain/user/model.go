package user

// User is a registered identity. The token is issued once at registration
// and never rotated; PasswordHash and Token never leave the server.
type User struct {
	ID           int
	Email        string
	PasswordHash string
	Token        string
}

// Summary is the public view of a User returned by registration.
type Summary struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}
