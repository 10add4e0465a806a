package services

import (
	"fmt"
	"log"
	"time"

	"atelier/internal/models"
	"atelier/internal/repositories"
	"atelier/pkg/rabbitmq"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo        repositories.UserRepository
	jwtSecret       []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
	mqClient        *rabbitmq.Client
}

// LoginResult carries the token pair and role returned on a successful login.
type LoginResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Role         string `json:"role"`
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, mqClient *rabbitmq.Client) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		jwtSecret:       []byte(jwtSecret),
		accessDuration:  24 * time.Hour,
		refreshDuration: 7 * 24 * time.Hour,
		mqClient:        mqClient,
	}
}

// RegisterUser registers a new account, hashes the password and saves it.
func (s *AuthService) RegisterUser(user *models.User) error {
	if existingUser, err := s.userRepo.GetByEmail(user.Email); err == nil && existingUser != nil {
		return fmt.Errorf("email '%s' already registered", user.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginUser authenticates by email and password and returns an access token,
// a refresh token and the account role.
func (s *AuthService) LoginUser(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	accessToken, err := s.signToken(user, "access", s.accessDuration)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(user, "refresh", s.refreshDuration)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         user.Role,
	}, nil
}

func (s *AuthService) signToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"type":    tokenType,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ForgotPassword issues a reset token for the account and hands it to the
// notification pipeline. The response to the caller is identical whether or
// not the email exists, so the endpoint cannot be used to probe accounts.
func (s *AuthService) ForgotPassword(email string) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		log.Printf("Password reset requested for unknown email")
		return
	}

	resetToken := uuid.New().String()
	if s.mqClient != nil {
		event := rabbitmq.Event{
			Type:    "auth.password_reset",
			Email:   user.Email,
			Payload: resetToken,
		}
		if err := s.mqClient.PublishEvent(event); err != nil {
			log.Printf("Warning: Failed to publish password reset event: %v", err)
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping password reset event.")
	}
}
