package commands

import (
	"context"
	"log/slog"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/operator"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/jwt"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/password"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrOperatorNotFound     = errs.New("operator not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrOperatorInactive     = errs.New("operator inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	OperatorID  uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.OperatorReadStore
	repo       OperatorRepository
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(readStore queries.OperatorReadStore, repo OperatorRepository, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		repo:       repo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	credentials, err := operator.NewCredentials(email, pass)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateOperator(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := operator.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.repo.UpdateLastLogin(ctx, view.ID); err != nil {
		// Not critical; the login itself succeeded.
		a.logger.Warn("failed to update last login", "operator_id", view.ID, "error", err.Error())
	}

	return &LoginResult{OperatorID: view.ID, AccessToken: token}, nil
}

func (a *authCommandsImpl) validateOperator(ctx context.Context, credentials operator.Credentials) (*queries.OperatorView, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent account enumeration.
		return nil, ErrInvalidCredentials
	}
	if view == nil {
		return nil, ErrOperatorNotFound
	}
	if !view.IsActive {
		return nil, ErrOperatorInactive
	}
	if err := password.Verify(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return view, nil
}
