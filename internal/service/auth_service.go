package service

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"acadmix-be/internal/dto"
	"acadmix-be/internal/entity"
	"acadmix-be/internal/pkg/apperr"
	"acadmix-be/internal/pkg/mailer"
	"acadmix-be/internal/repository/specification"
	"acadmix-be/internal/repository/unitofwork"
	"acadmix-be/pkg/events"
	pktNats "acadmix-be/pkg/nats"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, apperr.Conflict("Email already registered")
	}
	if req.Role == string(entity.UserRoleStudent) && req.RollNo != "" {
		taken, _ := uow.UserRepository().FindOne(ctx, specification.ByRollNo{RollNo: req.RollNo})
		if taken != nil {
			return nil, apperr.Conflict("Roll number already registered")
		}
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Create User Entity with role-conditional fields
	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         entity.UserRole(req.Role),
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	switch user.Role {
	case entity.UserRoleStudent:
		user.Branch = &req.Branch
		user.Year = &req.Year
		user.Semester = &req.Semester
		user.RollNo = &req.RollNo
	case entity.UserRoleTeacher:
		user.Department = &req.Department
		user.Designation = &req.Designation
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// 4. Side effects, none block the response
	go func() {
		_ = s.emailService.SendWelcome(user.Email, user.FullName)
	}()
	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.New("USER_REGISTERED", map[string]interface{}{
			"user_id":   user.Id.String(),
			"full_name": user.FullName,
			"role":      string(user.Role),
		}))
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *ToUserResponse(user)}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, apperr.Forbidden("Account is blocked")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *ToUserResponse(user)}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	return ToUserResponse(user), nil
}

func (s *authService) generateToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ToUserResponse maps a user entity to its API shape. Password hash never
// leaves the service layer.
func ToUserResponse(user *entity.User) *dto.UserResponse {
	res := &dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
	}
	if user.AvatarURL != nil {
		res.AvatarURL = *user.AvatarURL
	}
	if user.Branch != nil {
		res.Branch = *user.Branch
	}
	if user.Year != nil {
		res.Year = *user.Year
	}
	if user.Semester != nil {
		res.Semester = *user.Semester
	}
	if user.RollNo != nil {
		res.RollNo = *user.RollNo
	}
	if user.Department != nil {
		res.Department = *user.Department
	}
	if user.Designation != nil {
		res.Designation = *user.Designation
	}
	return res
}
