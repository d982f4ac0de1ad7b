package services

import (
	"github.com/delologroup/site/internal/config"
	"github.com/delologroup/site/internal/models"
	"github.com/delologroup/site/internal/utils"
	"github.com/delologroup/site/pkg/response"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{
		db:        db,
		jwtConfig: jwtCfg,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginUser struct {
	Username string `json:"username"`
}

type LoginResponse struct {
	Auth  bool      `json:"auth"`
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

var errInvalidCredentials = response.NewUnauthorized("invalid username or password")

// Login checks the credentials and issues a bearer token.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, errInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Username, s.jwtConfig.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Auth:  true,
		Token: token,
		User:  LoginUser{Username: user.Username},
	}, nil
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// EnsureAdmin creates the bootstrap administrator, or resets its password
// to the configured value when the account already exists.
func (s *AuthService) EnsureAdmin(admin *config.AdminConfig) error {
	hashedPassword, err := utils.HashPassword(admin.Password)
	if err != nil {
		return err
	}

	var user models.User
	err = s.db.Where("username = ?", admin.Username).First(&user).Error
	if isNotFound(err) {
		return s.db.Create(&models.User{
			Username: admin.Username,
			Password: hashedPassword,
		}).Error
	}
	if err != nil {
		return err
	}

	return s.db.Model(&user).Update("password", hashedPassword).Error
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func (s *AuthService) ChangePassword(userID uint, req *ChangePasswordRequest) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(req.OldPassword, user.Password) {
		return response.NewBadRequest("incorrect old password")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.db.Model(user).Update("password", hashedPassword).Error
}
