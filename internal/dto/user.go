package dto

import (
	"time"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// CreateUserRequest defines the data for creating a user. The initial
// password is generated server-side and mailed to the new user.
type CreateUserRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role" binding:"required,oneof=admin accountant employee"`
	PrintName string `json:"printName" binding:"required"`
	SenderID  string `json:"senderId" binding:"required"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
	Whatsapp  string `json:"whatsapp"`
	Address   string `json:"address"`
	PANNumber string `json:"panNumber"`
	AadhaarNo string `json:"aadhaarNumber"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	Phone    *string `json:"phone"`
	Whatsapp *string `json:"whatsapp"`
	Address  *string `json:"address"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	PrintName string    `json:"printName"`
	SenderID  string    `json:"senderId"`
	Position  string    `json:"position,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Whatsapp  string    `json:"whatsapp,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserResponse includes the generated initial password, which is also
// delivered to the user by email.
type CreateUserResponse struct {
	Message           string       `json:"message"`
	User              UserResponse `json:"user"`
	GeneratedPassword string       `json:"generatedPassword"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		PrintName: user.PrintName,
		SenderID:  user.SenderID,
		Position:  user.Position,
		Phone:     user.Phone,
		Whatsapp:  user.Whatsapp,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
