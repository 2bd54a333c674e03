package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/internal/domain"
	"github.com/compcleared/compcleared-api/internal/domain/entity"
	"github.com/compcleared/compcleared-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: signup, login y usuario actual.
// La emisión de la cookie de sesión vive en la capa HTTP; aquí solo identidad.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo}
}

// Signup crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado (email único global).
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	if in.Email == "" {
		return nil, domain.NewValidationError("email")
	}
	if in.Password == "" {
		return nil, domain.NewValidationError("password")
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = "admin"
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    in.CompanyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password. Tanto email desconocido como password
// incorrecto devuelven el mismo ErrInvalidCredentials: la respuesta no debe
// revelar cuál de los dos falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return toUserResponse(user), nil
}

// CurrentUser devuelve el usuario de la sesión junto con su empresa.
// Company es nil mientras el usuario no haya completado el flujo de billing.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, *dto.CompanyResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUnauthorized
	}
	var company *dto.CompanyResponse
	if user.CompanyID != "" {
		c, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
		if err != nil {
			return nil, nil, err
		}
		company = toCompanyResponse(c)
	}
	return toUserResponse(user), company, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		CompanyID:  u.CompanyID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		LocationID: u.LocationID,
		CreatedAt:  u.CreatedAt,
	}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Tier:               c.Tier,
		EmployeeCount:      c.EmployeeCount,
		Locations:          c.Locations,
		SubscriptionStatus: c.SubscriptionStatus,
		CreatedAt:          c.CreatedAt,
	}
}
