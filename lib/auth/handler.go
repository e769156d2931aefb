package authhandler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"talentdesk-backend/db"
	companystore "talentdesk-backend/lib/company/store"
	companyusersstore "talentdesk-backend/lib/company/users/store"
	filestorage "talentdesk-backend/lib/file-storage"
	authutils "talentdesk-backend/lib/utils/auth-utils"
	"talentdesk-backend/lib/utils/helpers"
	"talentdesk-backend/models"
	authapimodels "talentdesk-backend/models/api/auth"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	Register(data authapimodels.RegisterRequest) (companyID string, err error)
	Login(email, password string) (resp authapimodels.JWTResponse, err error)
	Me(ctx *fiber.Ctx) (resp authapimodels.UserView, err error)
	RefreshToken(refreshToken string) (resp authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		companyStore: companystore.NewInstance(db.DB),
		usersStore:   companyusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	companyStore companystore.Provider
	usersStore   companyusersstore.Provider
}

func (i impl) Register(data authapimodels.RegisterRequest) (companyID string, err error) {
	logger := log.WithField("email", data.Email)
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", helpers.ValidationErrf("email is already registered")
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		companyStore := companystore.NewInstance(tx)
		usersStore := companyusersstore.NewInstance(tx)
		companyID, err = companyStore.Create(dbmodels.Company{
			Name:    data.CompanyName,
			OrgType: data.OrgType,
		})
		if err != nil {
			return errors.Wrap(err, "company create error")
		}
		_, err = usersStore.Create(dbmodels.CompanyUser{
			BaseCompanyModel: dbmodels.BaseCompanyModel{
				CompanyID: companyID,
			},
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Email:     data.Email,
			Phone:     data.Phone,
			Password:  authutils.GetMD5Hash(data.Password),
			Role:      models.UserRoleAdmin,
			IsActive:  true,
		})
		if err != nil {
			return errors.Wrap(err, "admin user create error")
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("company registration error")
		return "", err
	}
	// the attachment bucket is provisioned up front so the first upload
	// does not have to race bucket creation
	if err := filestorage.Instance.MakeCompanyBucket(context.Background(), companyID); err != nil {
		logger.WithField("company_id", companyID).WithError(err).Warn("company bucket create error")
	}
	logger.WithField("company_id", companyID).Info("company registered")
	return companyID, nil
}

func (i impl) Login(email, password string) (resp authapimodels.JWTResponse, err error) {
	user, err := i.usersStore.GetByEmail(email)
	if err != nil {
		return resp, err
	}
	if user == nil || !user.IsActive {
		return resp, errors.New("invalid credentials")
	}
	if user.Password != authutils.GetMD5Hash(password) {
		return resp, errors.New("invalid credentials")
	}
	return i.issueTokens(*user)
}

func (i impl) Me(ctx *fiber.Ctx) (resp authapimodels.UserView, err error) {
	claims := authutils.GetClaims(ctx)
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return resp, errors.New("no user in token")
	}
	user, err := i.usersStore.FindByID(sub)
	if err != nil {
		return resp, err
	}
	if user == nil {
		return resp, helpers.NotFoundErrf("user not found")
	}
	resp = authapimodels.UserView{
		ID:         user.ID,
		CompanyID:  user.CompanyID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       user.Role,
		RoleName:   user.Role.ToHuman(),
		Department: user.Department,
	}
	if user.Company != nil {
		resp.OrgType = user.Company.OrgType
	}
	return resp, nil
}

func (i impl) RefreshToken(refreshToken string) (resp authapimodels.JWTResponse, err error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return resp, errors.Wrap(err, "invalid refresh token")
	}
	user, err := i.usersStore.FindByID(userID)
	if err != nil {
		return resp, err
	}
	if user == nil || !user.IsActive {
		return resp, errors.New("user is not active")
	}
	return i.issueTokens(*user)
}

func (i impl) issueTokens(user dbmodels.CompanyUser) (resp authapimodels.JWTResponse, err error) {
	orgType := models.OrgTypeCompany
	if user.Company != nil {
		orgType = user.Company.OrgType
	}
	access, err := authutils.GetToken(user.ID, user.GetFullName(), user.CompanyID, user.Role, orgType)
	if err != nil {
		return resp, errors.Wrap(err, "access token error")
	}
	refresh, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return resp, errors.Wrap(err, "refresh token error")
	}
	return authapimodels.JWTResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
