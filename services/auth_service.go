package services

import (
	"errors"
	"strings"

	"github.com/irsyadst/nutri-balance-backend/config"
	"github.com/irsyadst/nutri-balance-backend/models"
	"github.com/irsyadst/nutri-balance-backend/utils"

	"gorm.io/gorm"
)

// RegisterUser stages a registration: the account is created as a TempUser
// and only promoted after the emailed OTP is verified.
func RegisterUser(name, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count == 0 {
		config.DB.Model(&models.TempUser{}).Where("email = ?", email).Count(&count)
	}
	if count > 0 {
		return errors.New("email is already registered")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	otp := utils.GenerateOTP()

	if err := utils.SendOTPEmail(email, otp); err != nil {
		return errors.New("failed to send verification email")
	}

	temp := models.TempUser{Name: name, Email: email, Password: hashed, OTP: otp}
	return config.DB.Create(&temp).Error
}

// VerifyOTP promotes a pending registration to a full account and returns a
// session token.
func VerifyOTP(email, otp string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var temp models.TempUser
	if err := config.DB.Where("email = ?", email).First(&temp).Error; err != nil {
		return "", errors.New("registration not found or expired")
	}
	if temp.OTP != otp {
		return "", errors.New("incorrect verification code")
	}

	user := models.User{Name: temp.Name, Email: temp.Email, Password: temp.Password, Role: "user"}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&temp).Error
	})
	if err != nil {
		return "", err
	}

	return utils.GenerateJWT(user.ID, user.Name, user.Role)
}

// AuthenticateUser checks credentials and returns a session token.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error; err != nil {
		return "", errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(user.ID, user.Name, user.Role)
}

// AuthenticateAdmin is AuthenticateUser restricted to admin accounts; the
// admin dashboard uses a separate login endpoint.
func AuthenticateAdmin(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error; err != nil {
		return "", errors.New("invalid email or password")
	}
	if user.Role != "admin" || !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(user.ID, user.Name, user.Role)
}
