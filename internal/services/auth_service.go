package services

import (
	"context"

	"clubpuntos/internal/models/db_models"
	"clubpuntos/internal/models/request_models"
	"clubpuntos/internal/models/response_models"
	"clubpuntos/internal/repositories"
	"clubpuntos/pkg/logger"
	"clubpuntos/pkg/utils"
)

// Welcome bonus granted on registration, always in the same database
// transaction as the member row itself.
const (
	WelcomeBonusAmount  = 15
	WelcomeBonusConcept = "Bienvenida al Club - Regalo de registro"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	Register(ctx context.Context, request request_models.RegisterRequest) (*db_models.Member, error)
}

type AuthService struct {
	adminRepo  repositories.AdminRepository
	memberRepo repositories.MemberRepository
}

// Indirection over token signing so tests can force a failure.
var createToken = utils.CreateToken

func NewAuthService(adminRepo repositories.AdminRepository, memberRepo repositories.MemberRepository) AuthServiceInterface {
	return &AuthService{
		adminRepo:  adminRepo,
		memberRepo: memberRepo,
	}
}

// Login resolves a credential against admins first, then members. Both
// failure modes (unknown email, wrong password) collapse into the same
// error so callers cannot enumerate accounts.
func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {

	admin, err := a.adminRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if admin != nil {
		if err := utils.ComparePasswords(admin.PasswordHash, request.Password); err != nil {
			return nil, utils.ErrInvalidCredentials
		}
		token, err := createToken(admin.ID, response_models.ClassAdmin)
		if err != nil {
			// Signing failure is an internal fault, not a credential
			// problem.
			return nil, utils.ErrDatabaseError
		}
		return &response_models.LoginResponse{
			Token:        token,
			Account:      admin,
			AccountClass: response_models.ClassAdmin,
		}, nil
	}

	member, err := a.memberRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(member.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := createToken(member.ID, response_models.ClassMember)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		Token:        token,
		Account:      member,
		AccountClass: response_models.ClassMember,
	}, nil
}

func (a *AuthService) Register(ctx context.Context, request request_models.RegisterRequest) (*db_models.Member, error) {

	existing, err := a.memberRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	member := &db_models.Member{
		Email:        request.Email,
		Name:         request.Name,
		PasswordHash: hashedPassword,
	}
	welcome := &db_models.LedgerEntry{
		Concept:  WelcomeBonusConcept,
		Amount:   WelcomeBonusAmount,
		Category: db_models.CategoryCredit,
	}

	log := logger.Get()
	if err := a.memberRepo.RegisterWithWelcome(ctx, member, welcome); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("registration failed")
		return nil, utils.ErrDatabaseError
	}

	log.Info().Uint("member_id", member.ID).Msg("member registered")
	return member, nil
}
