package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Sables/internal/model"
	"github.com/lshigami/Sables/internal/repository"
	"github.com/lshigami/Sables/internal/token"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SessionService is the single trust boundary: every protected operation must
// resolve its bearer token here before touching any data.
type SessionService interface {
	Resolve(tokenString string) (*model.User, error)
}

type sessionService struct {
	tokens   token.Service
	userRepo repository.UserRepository
}

func NewSessionService(tokens token.Service, userRepo repository.UserRepository) SessionService {
	return &sessionService{tokens: tokens, userRepo: userRepo}
}

// Resolve validates the token and loads the subject's user record. Every
// token failure collapses to ErrUnauthenticated. A valid token whose subject
// no longer exists yields ErrUnknownUser; tokens are stateless, so a user
// deleted after issuance is a case to handle, not to assume impossible.
func (s *sessionService) Resolve(tokenString string) (*model.User, error) {
	subject, err := s.tokens.Decode(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("Resolve: token rejected")
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByUsername(subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Str("subject", subject).Msg("Resolve: token subject has no user record")
			return nil, ErrUnknownUser
		}
		log.Error().Err(err).Str("subject", subject).Msg("Resolve: user lookup failed")
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return user, nil
}
