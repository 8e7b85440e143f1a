package service

import (
	"context"
	"fmt"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/google/uuid"
)

// DirectoryService lists the profiles a user can message.
type DirectoryService struct {
	profileRepo repository.ProfileRepository
}

func NewDirectoryService(profileRepo repository.ProfileRepository) *DirectoryService {
	return &DirectoryService{profileRepo: profileRepo}
}

// ListContacts returns every profile except the caller's own. A store
// failure is returned as an error, never collapsed into an empty list.
func (s *DirectoryService) ListContacts(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	profiles, err := s.profileRepo.ListExcept(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return profiles, nil
}
