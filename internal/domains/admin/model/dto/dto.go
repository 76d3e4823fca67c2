package dto

import (
	"strings"

	"barbershop/internal/domains/admin/model"
	"barbershop/shared/constant"
	gDto "barbershop/shared/dto"
	gModel "barbershop/shared/model"
	"barbershop/shared/timezone"

	"github.com/google/uuid"
)

type CreateAdminRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"     validate:"required,max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin superadmin"`
}

func (r *CreateAdminRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)

	if r.Role == constant.Empty {
		r.Role = constant.RoleAdmin
	}
}

func (r *CreateAdminRequest) ToModel(user, hashedPassword string) model.Admin {
	now := timezone.Now()

	return model.Admin{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Name:     r.Name,
		Role:     r.Role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AdminResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login"`
	gDto.Metadata
}

func (r *AdminResponse) FromModel(admin model.Admin) {
	r.ID = admin.ID
	r.Email = admin.Email
	r.Name = admin.Name
	r.Role = admin.Role
	r.Active = admin.Active

	if admin.LastLogin != nil {
		lastLogin := timezone.Format(*admin.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(admin.Metadata)
}
