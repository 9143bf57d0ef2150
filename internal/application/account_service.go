package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/minseop-dev/userboard/internal/domain/apperrors"
	"github.com/minseop-dev/userboard/internal/domain/entity"
	"github.com/minseop-dev/userboard/internal/domain/port"
	repo "github.com/minseop-dev/userboard/internal/domain/repository"
)

// CertificationSender notifies an account holder how to verify their email.
type CertificationSender interface {
	Send(accountID, certificationCode, email string)
}

// AccountService orchestrates the account lifecycle: creation, profile
// update, login and email verification. It reaches storage, time, id
// generation and mail only through injected ports.
type AccountService struct {
	Repo   repo.AccountRepository
	Cert   CertificationSender
	Clock  port.Clock
	IDGen  port.IDGenerator
	Logger *logrus.Logger
}

func NewAccountService(r repo.AccountRepository, cert CertificationSender, clock port.Clock, idgen port.IDGenerator, logger *logrus.Logger) *AccountService {
	return &AccountService{Repo: r, Cert: cert, Clock: clock, IDGen: idgen, Logger: logger}
}

type AccountCreateInput struct {
	Email    string
	Nickname string
	Address  string
}

type AccountUpdateInput struct {
	Nickname string
	Address  string
}

// Create persists a PENDING account with a fresh certification code and
// fires off the certification mail. The mail dispatch is asynchronous; its
// outcome is not observed here.
func (s *AccountService) Create(ctx context.Context, in AccountCreateInput) (*entity.Account, error) {
	a := entity.NewAccount(in.Email, in.Nickname, in.Address, s.IDGen.Random())
	a, err := s.Repo.Save(ctx, a)
	if err != nil {
		return nil, err
	}
	s.Cert.Send(a.ID, a.CertificationCode, a.Email)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"account_id": a.ID, "email": a.Email}).Info("account created")
	}
	return a, nil
}

// GetByID looks up an account regardless of status.
func (s *AccountService) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	a, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.NewNotFound("accounts", "id", id)
	}
	return a, nil
}

// GetActiveByEmail looks up an ACTIVE account by email. A PENDING account
// with the same email does not satisfy the query.
func (s *AccountService) GetActiveByEmail(ctx context.Context, email string) (*entity.Account, error) {
	a, err := s.Repo.FindByEmailAndStatus(ctx, email, entity.AccountActive)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.NewNotFound("accounts", "email,status", email+","+string(entity.AccountActive))
	}
	return a, nil
}

// GetActiveByID looks up an ACTIVE account by id.
func (s *AccountService) GetActiveByID(ctx context.Context, id string) (*entity.Account, error) {
	a, err := s.Repo.FindByIDAndStatus(ctx, id, entity.AccountActive)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.NewNotFound("accounts", "id,status", id+","+string(entity.AccountActive))
	}
	return a, nil
}

// Update overwrites nickname and address on an ACTIVE account.
func (s *AccountService) Update(ctx context.Context, id string, in AccountUpdateInput) (*entity.Account, error) {
	a, err := s.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.UpdateProfile(in.Nickname, in.Address)
	return s.Repo.Save(ctx, a)
}

// Login stamps the last login time on an ACTIVE account. Pending accounts
// cannot log in until they verify their email.
func (s *AccountService) Login(ctx context.Context, id string) error {
	a, err := s.GetActiveByID(ctx, id)
	if err != nil {
		return err
	}
	a.Login(s.Clock.NowMillis())
	_, err = s.Repo.Save(ctx, a)
	return err
}

// VerifyEmail activates the account identified by id when the supplied
// certification code matches exactly. Verification is status-agnostic:
// re-verifying an ACTIVE account with the correct code succeeds and changes
// nothing.
func (s *AccountService) VerifyEmail(ctx context.Context, id, certificationCode string) error {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !a.Verify(certificationCode) {
		return fmt.Errorf("account %s: %w", id, apperrors.ErrCertificationMismatch)
	}
	if _, err := s.Repo.Save(ctx, a); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("account_id", a.ID).Info("account certified")
	}
	return nil
}

// IsCertificationMismatch reports whether err stems from a wrong
// certification code.
func IsCertificationMismatch(err error) bool {
	return errors.Is(err, apperrors.ErrCertificationMismatch)
}
