package dto

import "github.com/adiprasetyo/task-tracker-api/internal/models"

// UserResource is the public projection of a user. The password hash is
// never part of it.
type UserResource struct {
	ID     uint64  `json:"id"`
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	Email  string  `json:"email"`
	Avatar *string `json:"avatar"`
}

// ToUserResource converts a User model to its public representation.
func ToUserResource(user models.User) UserResource {
	return UserResource{
		ID:     user.ID,
		Name:   user.Name,
		Phone:  user.Phone,
		Email:  user.Email,
		Avatar: user.Avatar,
	}
}

// ToUserCollection converts a slice of users.
func ToUserCollection(users []models.User) []UserResource {
	out := make([]UserResource, len(users))
	for i, u := range users {
		out[i] = ToUserResource(u)
	}
	return out
}
