package dto

import (
	"github.com/yukikurage/migration-tracker/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          uint64             `json:"id"`
	Username    string             `json:"username"`
	Name        string             `json:"name"`
	AccessLevel models.AccessLevel `json:"access_level"`
	Active      bool               `json:"active"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Username:    user.Username,
		Name:        user.Name,
		AccessLevel: user.AccessLevel,
		Active:      user.Active,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
