package service

import (
	"context"

	"github.com/google/uuid"

	"acadmix-be/internal/dto"
	"acadmix-be/internal/entity"
	"acadmix-be/internal/pkg/apperr"
	"acadmix-be/internal/repository/specification"
	"acadmix-be/internal/repository/unitofwork"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	UpdateAvatar(ctx context.Context, userId uuid.UUID, avatarURL string) error
	ListTeachers(ctx context.Context, req *dto.TeacherListRequest) ([]dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
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

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	// Only fields matching the user's role are writable.
	switch user.Role {
	case entity.UserRoleStudent:
		if req.Branch != "" {
			user.Branch = &req.Branch
		}
		if req.Year != 0 {
			user.Year = &req.Year
		}
		if req.Semester != 0 {
			user.Semester = &req.Semester
		}
	case entity.UserRoleTeacher:
		if req.Department != "" {
			user.Department = &req.Department
		}
		if req.Designation != "" {
			user.Designation = &req.Designation
		}
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userId uuid.UUID, avatarURL string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().UpdateAvatar(ctx, userId, avatarURL)
}

func (s *userService) ListTeachers(ctx context.Context, req *dto.TeacherListRequest) ([]dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByRole{Role: string(entity.UserRoleTeacher)},
		specification.Filter("status", string(entity.UserStatusActive)),
		specification.OrderBy{Field: "full_name"},
	}
	if req.Department != "" {
		specs = append(specs, specification.Filter("department", req.Department))
	}
	if req.Search != "" {
		specs = append(specs, specification.SearchUsers{Query: req.Search})
	}

	teachers, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]dto.UserResponse, len(teachers))
	for i, t := range teachers {
		res[i] = *ToUserResponse(t)
	}
	return res, nil
}
