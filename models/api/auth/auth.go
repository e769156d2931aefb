package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"talentdesk-backend/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type JWTResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("refresh token is required")
	}
	return nil
}

type RegisterRequest struct {
	CompanyName string         `json:"company_name"`
	OrgType     models.OrgType `json:"org_type"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Password    string         `json:"password"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.CompanyName) == "" {
		return errors.New("company name is required")
	}
	if !r.OrgType.Validate() {
		return errors.New("unknown organization type")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

type UserView struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"company_id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Role       models.UserRole `json:"role"`
	RoleName   string          `json:"role_name"`
	Department string          `json:"department"`
	OrgType    models.OrgType  `json:"org_type"`
}
