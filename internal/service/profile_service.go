// Package service implements the application's business rules on top of the
// repository layer.
package service

import (
	"context"
	"strings"

	"devconnector/internal/models"
	"devconnector/internal/repository"
	"devconnector/internal/validation"
)

// ProfileService implements profile upsert, the embedded experience and
// education lists, and cascading account deletion.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// UpsertProfileInput carries the full profile form. Optional fields left
// empty are never written over existing values; the social block is always
// replaced wholesale.
type UpsertProfileInput struct {
	UserID         uint
	Status         string
	Skills         string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// ExperienceInput is a single experience entry as submitted by the client.
type ExperienceInput struct {
	UserID      uint
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput is a single education entry as submitted by the client.
type EducationInput struct {
	UserID       uint
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// NewProfileService returns a ProfileService using the given repositories.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// GetMine returns the caller's profile. A missing profile is a normal state
// for new users and surfaces as a not-found error, not a server failure.
func (s *ProfileService) GetMine(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("There is no profile for this user")
	}
	return profile, nil
}

// GetByUserID returns any user's profile by their user id.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile not found")
	}
	return profile, nil
}

// ListAll returns every profile with its denormalized author fields.
func (s *ProfileService) ListAll(ctx context.Context) ([]*models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates the caller's profile or merges the submitted fields into an
// existing one. Updates never blank out an optional field that was omitted;
// skills are always recomputed from the comma-split input.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	verr := &models.ValidationErrors{}
	if strings.TrimSpace(in.Status) == "" {
		verr.Add("Status is required")
	}
	if strings.TrimSpace(in.Skills) == "" {
		verr.Add("Skills are required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	skills := validation.SplitSkills(in.Skills)
	social := models.SocialLinks{
		Youtube:   in.Youtube,
		Twitter:   in.Twitter,
		Facebook:  in.Facebook,
		Linkedin:  in.Linkedin,
		Instagram: in.Instagram,
	}

	existing, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		profile := &models.Profile{
			UserID:         in.UserID,
			Status:         in.Status,
			Company:        in.Company,
			Website:        in.Website,
			Location:       in.Location,
			Bio:            in.Bio,
			GithubUsername: in.GithubUsername,
			Skills:         skills,
			Social:         social,
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	existing.Status = in.Status
	existing.Skills = skills
	existing.Social = social
	if in.Company != "" {
		existing.Company = in.Company
	}
	if in.Website != "" {
		existing.Website = in.Website
	}
	if in.Location != "" {
		existing.Location = in.Location
	}
	if in.Bio != "" {
		existing.Bio = in.Bio
	}
	if in.GithubUsername != "" {
		existing.GithubUsername = in.GithubUsername
	}

	if err := s.profileRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteAccount removes the caller's posts, profile and user record.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.DeleteCascade(ctx, userID)
}

// AddExperience prepends a new experience entry to the caller's profile and
// returns the updated profile.
func (s *ProfileService) AddExperience(ctx context.Context, in ExperienceInput) (*models.Profile, error) {
	verr := &models.ValidationErrors{}
	if strings.TrimSpace(in.Title) == "" {
		verr.Add("Title is required")
	}
	if strings.TrimSpace(in.Company) == "" {
		verr.Add("Company is required")
	}
	if strings.TrimSpace(in.From) == "" {
		verr.Add("From date is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	profile, err := s.GetMine(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, err
	}

	return s.GetMine(ctx, in.UserID)
}

// DeleteExperience removes an experience entry by id. An id not present on
// the caller's profile is an explicit not-found, never a silent removal of
// some other entry.
func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.profileRepo.DeleteExperience(ctx, profile.ID, expID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, models.NewNotFoundError("Experience not found")
	}

	return s.GetMine(ctx, userID)
}

// AddEducation prepends a new education entry to the caller's profile and
// returns the updated profile.
func (s *ProfileService) AddEducation(ctx context.Context, in EducationInput) (*models.Profile, error) {
	verr := &models.ValidationErrors{}
	if strings.TrimSpace(in.School) == "" {
		verr.Add("School is required")
	}
	if strings.TrimSpace(in.Degree) == "" {
		verr.Add("Degree is required")
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		verr.Add("Field of study is required")
	}
	if strings.TrimSpace(in.From) == "" {
		verr.Add("From date is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	profile, err := s.GetMine(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, err
	}

	return s.GetMine(ctx, in.UserID)
}

// DeleteEducation removes an education entry by id, failing explicitly when
// the id is not on the caller's profile.
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.profileRepo.DeleteEducation(ctx, profile.ID, eduID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, models.NewNotFoundError("Education not found")
	}

	return s.GetMine(ctx, userID)
}
