// PrinceMahmood | 2026
// dto.go

package user

type SaveUserRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"omitempty,max=100"`
	Photo  string `json:"photo" validate:"omitempty,max=2048"`
	Role   string `json:"role" validate:"omitempty,oneof=guest host admin"`
	Status string `json:"status" validate:"omitempty,oneof=Requested"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=guest host admin"`
}
