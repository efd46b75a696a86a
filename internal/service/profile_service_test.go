package service

import (
	"context"
	"testing"

	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMine(t *testing.T) {
	profiles := noopProfileRepo()
	svc := NewProfileService(profiles, noopUserRepo())
	ctx := context.Background()

	t.Run("NoProfile", func(t *testing.T) {
		_, err := svc.GetMine(ctx, 1)
		var ae *models.AppError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, models.CodeNotFound, ae.Code)
		assert.Equal(t, "There is no profile for this user", ae.Message)
	})

	t.Run("Found", func(t *testing.T) {
		profiles.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{ID: 10, UserID: userID, Status: "Developer"}, nil
		}
		got, err := svc.GetMine(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(10), got.ID)
	})
}

func TestGetByUserIDMessageDiffers(t *testing.T) {
	svc := NewProfileService(noopProfileRepo(), noopUserRepo())

	_, err := svc.GetByUserID(context.Background(), 42)
	var ae *models.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Profile not found", ae.Message)
}

func TestUpsertValidation(t *testing.T) {
	svc := NewProfileService(noopProfileRepo(), noopUserRepo())
	ctx := context.Background()

	tests := []struct {
		name     string
		input    UpsertProfileInput
		wantMsgs []string
	}{
		{
			name:     "Missing both",
			input:    UpsertProfileInput{UserID: 1},
			wantMsgs: []string{"Status is required", "Skills are required"},
		},
		{
			name:     "Missing skills",
			input:    UpsertProfileInput{UserID: 1, Status: "Developer"},
			wantMsgs: []string{"Skills are required"},
		},
		{
			name:     "Whitespace only",
			input:    UpsertProfileInput{UserID: 1, Status: "  ", Skills: " "},
			wantMsgs: []string{"Status is required", "Skills are required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upsert(ctx, tt.input)
			var verr *models.ValidationErrors
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Errors, len(tt.wantMsgs))
			for i, msg := range tt.wantMsgs {
				assert.Equal(t, msg, verr.Errors[i].Msg)
			}
		})
	}
}

func TestUpsertCreate(t *testing.T) {
	profiles := noopProfileRepo()
	var created *models.Profile
	profiles.createFn = func(_ context.Context, p *models.Profile) error {
		created = p
		return nil
	}
	svc := NewProfileService(profiles, noopUserRepo())

	got, err := svc.Upsert(context.Background(), UpsertProfileInput{
		UserID:  1,
		Status:  "Developer",
		Skills:  "Go, React , PostgreSQL",
		Company: "Acme",
		Youtube: "https://youtube.com/@dev",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Same(t, created, got)
	assert.Equal(t, []string{"Go", "React", "PostgreSQL"}, created.Skills)
	assert.Equal(t, "Acme", created.Company)
	assert.Equal(t, "https://youtube.com/@dev", created.Social.Youtube)
}

func TestUpsertMerge(t *testing.T) {
	existing := &models.Profile{
		ID:       10,
		UserID:   1,
		Status:   "Junior Developer",
		Company:  "OldCo",
		Website:  "https://old.example.com",
		Bio:      "old bio",
		Skills:   []string{"JS"},
		Social:   models.SocialLinks{Twitter: "https://twitter.com/old"},
		Location: "Oldtown",
	}

	profiles := noopProfileRepo()
	profiles.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) { return existing, nil }
	var updated *models.Profile
	profiles.updateFn = func(_ context.Context, p *models.Profile) error {
		updated = p
		return nil
	}
	svc := NewProfileService(profiles, noopUserRepo())

	got, err := svc.Upsert(context.Background(), UpsertProfileInput{
		UserID:  1,
		Status:  "Senior Developer",
		Skills:  "Go",
		Company: "NewCo",
		// Website, Bio, Location omitted; social submitted without Twitter.
		Linkedin: "https://linkedin.com/in/dev",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Senior Developer", got.Status)
	assert.Equal(t, []string{"Go"}, got.Skills)
	assert.Equal(t, "NewCo", got.Company)
	assert.Equal(t, "https://old.example.com", got.Website, "omitted optional fields keep their values")
	assert.Equal(t, "old bio", got.Bio)
	assert.Equal(t, "Oldtown", got.Location)
	assert.Equal(t, "https://linkedin.com/in/dev", got.Social.Linkedin)
	assert.Empty(t, got.Social.Twitter, "social block is replaced wholesale")
}

func TestAddExperience(t *testing.T) {
	ctx := context.Background()

	t.Run("Validation", func(t *testing.T) {
		svc := NewProfileService(noopProfileRepo(), noopUserRepo())
		_, err := svc.AddExperience(ctx, ExperienceInput{UserID: 1})

		var verr *models.ValidationErrors
		require.ErrorAs(t, err, &verr)
		msgs := make([]string, 0, len(verr.Errors))
		for _, e := range verr.Errors {
			msgs = append(msgs, e.Msg)
		}
		assert.Equal(t, []string{"Title is required", "Company is required", "From date is required"}, msgs)
	})

	t.Run("RequiresProfile", func(t *testing.T) {
		svc := NewProfileService(noopProfileRepo(), noopUserRepo())
		_, err := svc.AddExperience(ctx, ExperienceInput{
			UserID: 1, Title: "Engineer", Company: "Acme", From: "2020-01-01",
		})
		var ae *models.AppError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, "There is no profile for this user", ae.Message)
	})

	t.Run("Success", func(t *testing.T) {
		profiles := noopProfileRepo()
		profiles.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{ID: 10, UserID: userID}, nil
		}
		var added *models.Experience
		profiles.addExperienceFn = func(_ context.Context, exp *models.Experience) error {
			added = exp
			return nil
		}
		svc := NewProfileService(profiles, noopUserRepo())

		_, err := svc.AddExperience(ctx, ExperienceInput{
			UserID: 1, Title: "Engineer", Company: "Acme", From: "2020-01-01", Current: true,
		})
		require.NoError(t, err)
		require.NotNil(t, added)
		assert.Equal(t, uint(10), added.ProfileID)
		assert.True(t, added.Current)
	})
}

func TestDeleteExperienceNotFound(t *testing.T) {
	profiles := noopProfileRepo()
	profiles.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		return &models.Profile{ID: 10, UserID: userID}, nil
	}
	profiles.deleteExperienceFn = func(_ context.Context, _, _ uint) (int64, error) { return 0, nil }
	svc := NewProfileService(profiles, noopUserRepo())

	_, err := svc.DeleteExperience(context.Background(), 1, 99)
	var ae *models.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, models.CodeNotFound, ae.Code)
	assert.Equal(t, "Experience not found", ae.Message)
}

func TestAddEducationValidation(t *testing.T) {
	svc := NewProfileService(noopProfileRepo(), noopUserRepo())

	_, err := svc.AddEducation(context.Background(), EducationInput{UserID: 1})
	var verr *models.ValidationErrors
	require.ErrorAs(t, err, &verr)
	msgs := make([]string, 0, len(verr.Errors))
	for _, e := range verr.Errors {
		msgs = append(msgs, e.Msg)
	}
	assert.Equal(t, []string{
		"School is required",
		"Degree is required",
		"Field of study is required",
		"From date is required",
	}, msgs)
}

func TestDeleteEducationNotFound(t *testing.T) {
	profiles := noopProfileRepo()
	profiles.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		return &models.Profile{ID: 10, UserID: userID}, nil
	}
	profiles.deleteEducationFn = func(_ context.Context, _, _ uint) (int64, error) { return 0, nil }
	svc := NewProfileService(profiles, noopUserRepo())

	_, err := svc.DeleteEducation(context.Background(), 1, 99)
	var ae *models.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Education not found", ae.Message)
}

func TestDeleteAccount(t *testing.T) {
	users := noopUserRepo()
	var deleted uint
	users.deleteCascadeFn = func(_ context.Context, userID uint) error {
		deleted = userID
		return nil
	}
	svc := NewProfileService(noopProfileRepo(), users)

	require.NoError(t, svc.DeleteAccount(context.Background(), 7))
	assert.Equal(t, uint(7), deleted)
}
