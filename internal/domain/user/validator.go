package user

import (
	"fmt"
	"strings"
)

const (
	minEmailLen    = 3
	maxEmailLen    = 254
	minPasswordLen = 4
	maxPasswordLen = 72 // bcrypt input limit
)

func validateEmail(email string) error {
	if len(email) < minEmailLen {
		return fmt.Errorf("email must be at least %d characters", minEmailLen)
	}
	if len(email) > maxEmailLen {
		return fmt.Errorf("email must be at most %d characters", maxEmailLen)
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("email must contain a local part and a domain")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLen)
	}
	return nil
}
