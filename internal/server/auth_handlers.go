package server

import (
	"errors"

	"devconnector/internal/gravatar"
	"devconnector/internal/models"
	"devconnector/internal/repository"
	"devconnector/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register handles POST /api/users: validate, derive the avatar from the
// email, hash the password and return a signed token.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		verr := &models.ValidationErrors{}
		verr.Add("Invalid request body")
		return models.RespondWithError(c, fiber.StatusBadRequest, verr)
	}

	verr := &models.ValidationErrors{}
	if req.Name == "" {
		verr.Add("Name is required")
	}
	if validation.ValidateEmail(req.Email) != nil {
		verr.Add("Please include a valid email")
	}
	if validation.ValidatePassword(req.Password) != nil {
		verr.Add("Please enter a password with 6 or more characters")
	}
	if verr.HasErrors() {
		return models.RespondWithError(c, fiber.StatusBadRequest, verr)
	}

	duplicate := func() error {
		dup := &models.ValidationErrors{}
		dup.Add("User already exists")
		return models.RespondWithError(c, fiber.StatusBadRequest, dup)
	}

	existing, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return s.respondError(c, err, fiber.StatusBadRequest)
	}
	if existing != nil {
		return duplicate()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return s.respondError(c, models.NewInternalError(err), fiber.StatusBadRequest)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Avatar:   gravatar.URL(req.Email),
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		// Two registrations can race past the lookup; the unique index
		// rejects the loser and it gets the same duplicate response.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return duplicate()
		}
		return s.respondError(c, err, fiber.StatusBadRequest)
	}

	tokenString, err := s.tokens.Issue(user.ID)
	if err != nil {
		return s.respondError(c, models.NewInternalError(err), fiber.StatusBadRequest)
	}

	return c.JSON(fiber.Map{"token": tokenString})
}

// Login handles POST /api/auth. Unknown email and wrong password yield the
// identical response so credentials cannot be enumerated.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		verr := &models.ValidationErrors{}
		verr.Add("Invalid request body")
		return models.RespondWithError(c, fiber.StatusBadRequest, verr)
	}

	verr := &models.ValidationErrors{}
	if validation.ValidateEmail(req.Email) != nil {
		verr.Add("Please include a valid email")
	}
	if req.Password == "" {
		verr.Add("Password is required")
	}
	if verr.HasErrors() {
		return models.RespondWithError(c, fiber.StatusBadRequest, verr)
	}

	invalid := func() error {
		e := &models.ValidationErrors{}
		e.Add("Invalid Credentials")
		return models.RespondWithError(c, fiber.StatusBadRequest, e)
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return s.respondError(c, err, fiber.StatusBadRequest)
	}
	if user == nil {
		return invalid()
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return invalid()
	}

	tokenString, err := s.tokens.Issue(user.ID)
	if err != nil {
		return s.respondError(c, models.NewInternalError(err), fiber.StatusBadRequest)
	}

	return c.JSON(fiber.Map{"token": tokenString})
}

// GetCurrentUser handles GET /api/auth: load the authenticated user's
// record, password excluded. An identity whose user record no longer exists
// is an auth failure, not a server error.
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return s.respondError(c, err, fiber.StatusBadRequest)
	}
	if user == nil {
		return s.respondError(c, models.NewUnauthorizedError("User not found"), fiber.StatusBadRequest)
	}
	return c.JSON(user)
}
