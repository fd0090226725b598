package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/KyleAMathews/group-question-game/internal/apperr"
	"github.com/KyleAMathews/group-question-game/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: []byte(jwtSecret)}
}

// SeedAdmins loads the admin whitelist from its "user:password,user:password"
// form into the admins table. There is no open registration, everyone who may
// run games is listed here.
func (s *AuthService) SeedAdmins(adminUsers string) error {
	adminUsers = strings.TrimSpace(adminUsers)
	if adminUsers == "" {
		log.Println("[AUTH] ADMIN_USERS is empty, nobody will be able to log in")
		return nil
	}

	for _, pair := range strings.Split(adminUsers, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("malformed ADMIN_USERS entry %q, want user:password", pair)
		}
		username, password := parts[0], parts[1]

		var admin models.Admin
		err := s.db.Where("username = ?", username).First(&admin).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			admin = models.Admin{Username: username, PasswordHash: string(hash)}
			if err := s.db.Create(&admin).Error; err != nil {
				return err
			}
			log.Printf("[AUTH] seeded admin %s", username)
		case err != nil:
			return err
		default:
			if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
				hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
				if err != nil {
					return err
				}
				if err := s.db.Model(&admin).Update("password_hash", string(hash)).Error; err != nil {
					return err
				}
				log.Printf("[AUTH] updated password for admin %s", username)
			}
		}
	}
	return nil
}

func (s *AuthService) Login(username, password string) (string, error) {
	var admin models.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return "", apperr.InvalidInput("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", apperr.InvalidInput("invalid credentials")
	}

	return s.GenerateToken(admin.ID)
}

func (s *AuthService) GenerateToken(adminID uint) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	adminIDFloat, ok := claims["admin_id"].(float64)
	if !ok {
		return 0, errors.New("invalid admin_id in token")
	}

	return uint(adminIDFloat), nil
}

// IsAdmin reports whether the id still names a whitelisted admin. Tokens
// outlive whitelist edits, so the middleware asks on every request.
func (s *AuthService) IsAdmin(adminID uint) bool {
	var count int64
	if err := s.db.Model(&models.Admin{}).Where("id = ?", adminID).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}
