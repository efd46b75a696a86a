package repository

import (
	"context"
	"errors"

	"devconnector/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines persistence operations for profiles and their
// embedded experience/education lists.
type ProfileRepository interface {
	// GetByUserID returns (nil, nil) when the user has no profile yet.
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	AddExperience(ctx context.Context, exp *models.Experience) error
	// DeleteExperience reports how many rows were removed so callers can
	// distinguish a no-op from a real delete.
	DeleteExperience(ctx context.Context, profileID, expID uint) (int64, error)
	AddEducation(ctx context.Context, edu *models.Education) error
	DeleteEducation(ctx context.Context, profileID, eduID uint) (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// newestFirst orders list entries so the most recently added comes first,
// preserving the prepend semantics of the embedded lists.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("id DESC")
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Experience", newestFirst).
		Preload("Education", newestFirst).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Experience", newestFirst).
		Preload("Education", newestFirst).
		Order("id").
		Find(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update persists the profile's own columns. Associations are omitted so a
// profile save never re-writes the experience/education lists.
func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, exp *models.Experience) error {
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) DeleteExperience(ctx context.Context, profileID, expID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&models.Experience{}, expID)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *profileRepository) AddEducation(ctx context.Context, edu *models.Education) error {
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) DeleteEducation(ctx context.Context, profileID, eduID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&models.Education{}, eduID)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}
