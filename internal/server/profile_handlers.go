package server

import (
	"devconnector/internal/models"
	"devconnector/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Profile endpoints report missing resources with a 400, matching the
// contract the frontend was built against.
const profileNotFoundStatus = fiber.StatusBadRequest

// GetMyProfile handles GET /api/profile/me.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetMine(c.Context(), currentUserID(c))
	if err != nil {
		return s.respondError(c, err, profileNotFoundStatus)
	}
	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profile: create the caller's profile or
// merge the submitted fields into the existing one.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req struct {
		Status         string `json:"status"`
		Skills         string `json:"skills"`
		Company        string `json:"company"`
		Website        string `json:"website"`
		Location       string `json:"location"`
		Bio            string `json:"bio"`
		GithubUsername string `json:"githubusername"`
		Youtube        string `json:"youtube"`
		Twitter        string `json:"twitter"`
		Facebook       string `json:"facebook"`
		Linkedin       string `json:"linkedin"`
		Instagram      string `json:"instagram"`
	}
	if err := c.BodyParser(&req); err != nil {
		verr := &models.ValidationErrors{}
		verr.Add("Invalid request body")
		return models.RespondWithError(c, fiber.StatusBadRequest, verr)
	}

	profile, err := s.profileService.Upsert(c.Context(), service.UpsertProfileInput{
		UserID:         currentUserID(c),
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		return s.respondError(c, err, profileNotFoundStatus)
	}
	return c.JSON(profile)
}

// ListProfiles handles GET /api/profile.
func (s *Server) ListProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.ListAll(c.Context())
	if err != nil {
		return s.respondError(c, err, profileNotFoundStatus)
	}
	return c.JSON(profiles)
}

// GetProfileByUserID handles GET /api/profile/user/:id. A malformed id is
// indistinguishable from an unknown user.
func (s *Server) GetProfileByUserID(c *fiber.Ctx) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return s.respondError(c, models.NewNotFoundError("Profile not found"), profileNotFoundStatus)
	}

	profile, err := s.profileService.GetByUserID(c.Context(), userID)
	if err != nil {
		return s.respondError(c, err, profileNotFoundStatus)
	}
	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profile: remove the caller's posts,
// profile and user record in one pass.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteAccount(c.Context(), currentUserID(c)); err != nil {
		return s.respondError(c, err, profileNotFoundStatus)
	}
	return c.JSON(fiber.Map{"msg": "User deleted"})
}

// AddExperience handles PUT /api/profile/experience.
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Company     string `json:"company"`
		Location    string `json:"location"`
		From        string `json:"from"`
		To          string `json:"to"`
		Current     bool   `json:"current"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		verr := &models.ValidationErrors{}
		verr.Add("Invalid request body")
		return models.RespondWithError(c, fiber.StatusBadRequest, verr)
	}

	profile, err := s.profileService.AddExperience(c.Context(), service.ExperienceInput{
		UserID:      currentUserID(c),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return s.respondError(c, err, profileNotFoundStatus)
	}
	return c.JSON(profile)
}

// DeleteExperience handles DELETE /api/profile/experience/:id.
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	expID, ok := paramID(c, "id")
	if !ok {
		return s.respondError(c, models.NewNotFoundError("Experience not found"), profileNotFoundStatus)
	}

	profile, err := s.profileService.DeleteExperience(c.Context(), currentUserID(c), expID)
	if err != nil {
		return s.respondError(c, err, profileNotFoundStatus)
	}
	return c.JSON(profile)
}

// AddEducation handles PUT /api/profile/education.
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req struct {
		School       string `json:"school"`
		Degree       string `json:"degree"`
		FieldOfStudy string `json:"fieldofstudy"`
		From         string `json:"from"`
		To           string `json:"to"`
		Current      bool   `json:"current"`
		Description  string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		verr := &models.ValidationErrors{}
		verr.Add("Invalid request body")
		return models.RespondWithError(c, fiber.StatusBadRequest, verr)
	}

	profile, err := s.profileService.AddEducation(c.Context(), service.EducationInput{
		UserID:       currentUserID(c),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return s.respondError(c, err, profileNotFoundStatus)
	}
	return c.JSON(profile)
}

// DeleteEducation handles DELETE /api/profile/education/:id.
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	eduID, ok := paramID(c, "id")
	if !ok {
		return s.respondError(c, models.NewNotFoundError("Education not found"), profileNotFoundStatus)
	}

	profile, err := s.profileService.DeleteEducation(c.Context(), currentUserID(c), eduID)
	if err != nil {
		return s.respondError(c, err, profileNotFoundStatus)
	}
	return c.JSON(profile)
}
