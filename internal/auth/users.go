package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"
)

// DemoUsers builds the fixed credential list. The storefront has no
// identity provider; login matches against these accounts only. Passwords
// are hashed at startup so no hash material is committed.
func DemoUsers() []model.User {
	return []model.User{
		demoUser("admin@sneakergalaxy.com", "Store Admin", model.RoleAdmin, "admin123"),
		demoUser("user@sneakergalaxy.com", "Demo Customer", model.RoleCustomer, "user123"),
	}
}

func demoUser(username, name, role, password string) model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return model.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
}

// Authenticate checks credentials against a user list. Returns nil for
// unknown usernames or wrong passwords.
func Authenticate(users []model.User, username, password string) *model.User {
	for i := range users {
		if users[i].Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) != nil {
			return nil
		}
		return &users[i]
	}
	return nil
}
