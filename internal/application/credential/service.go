package credential

import (
	"context"
	"fmt"
	"time"

	"github.com/recipeshare/api/internal/domain"
	"github.com/recipeshare/api/internal/infrastructure/smtp"
	"github.com/recipeshare/api/internal/pkg/code"
)

// EphemeralStore is the keyed TTL store the service issues and checks
// credentials against. Absence is reported as ok=false, never an error.
type EphemeralStore interface {
	Set(ctx context.Context, ns domain.Namespace, subjectID int64, value string, ttl time.Duration) error
	Get(ctx context.Context, ns domain.Namespace, subjectID int64) (string, bool, error)
	Delete(ctx context.Context, ns domain.Namespace, subjectID int64) error
}

// Service issues and validates temporary login codes and session
// tokens. It owns no state of its own; everything lives in the
// ephemeral store under (namespace, author) keys.
type Service interface {
	// IssueTempCode generates a fresh 6-digit code for the author,
	// stores it and emails it. Any previously issued code for the same
	// author is overwritten. The code return value exists for internal
	// and test callers; the HTTP layer never exposes it.
	IssueTempCode(ctx context.Context, author *domain.Author) (string, error)
	// VerifyTempCode reports whether candidate matches the author's
	// live code. Absent or expired codes verify as false, not as an
	// error.
	VerifyTempCode(ctx context.Context, authorID int64, candidate string) (bool, error)
	IssueSessionToken(ctx context.Context, authorID int64, token string) error
	VerifySessionToken(ctx context.Context, authorID int64, candidate string) (bool, error)
}

type service struct {
	store            EphemeralStore
	mailer           smtp.Mailer
	tempCodeTTL      time.Duration
	sessionTokenTTL  time.Duration
	consumeOnSuccess bool
}

func NewService(store EphemeralStore, mailer smtp.Mailer, tempCodeTTL, sessionTokenTTL time.Duration, consumeOnSuccess bool) Service {
	return &service{
		store:            store,
		mailer:           mailer,
		tempCodeTTL:      tempCodeTTL,
		sessionTokenTTL:  sessionTokenTTL,
		consumeOnSuccess: consumeOnSuccess,
	}
}

func (s *service) IssueTempCode(ctx context.Context, author *domain.Author) (string, error) {
	c, err := code.New()
	if err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, domain.NamespaceTempCode, author.AuthorID, c, s.tempCodeTTL); err != nil {
		return "", err
	}
	// Delivery failure propagates: a caller that gets an error must not
	// tell the user a code was sent.
	body := fmt.Sprintf("Your login code is %s. It expires in %d minutes.", c, int(s.tempCodeTTL.Minutes()))
	if err := s.mailer.SendEmail(author.Email, "Your login code", body); err != nil {
		return "", fmt.Errorf("send code email: %w", err)
	}
	return c, nil
}

func (s *service) VerifyTempCode(ctx context.Context, authorID int64, candidate string) (bool, error) {
	stored, ok, err := s.store.Get(ctx, domain.NamespaceTempCode, authorID)
	if err != nil {
		return false, err
	}
	if !ok || stored != candidate {
		return false, nil
	}
	if s.consumeOnSuccess {
		if err := s.store.Delete(ctx, domain.NamespaceTempCode, authorID); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (s *service) IssueSessionToken(ctx context.Context, authorID int64, token string) error {
	return s.store.Set(ctx, domain.NamespaceSessionToken, authorID, token, s.sessionTokenTTL)
}

func (s *service) VerifySessionToken(ctx context.Context, authorID int64, candidate string) (bool, error) {
	stored, ok, err := s.store.Get(ctx, domain.NamespaceSessionToken, authorID)
	if err != nil {
		return false, err
	}
	return ok && stored == candidate, nil
}
