package server

import (
	"encoding/json"

	"devconnector/internal/cache"

	"github.com/gofiber/fiber/v2"
)

// GetGithubRepos handles GET /api/profile/github/:username. Responses are
// cached so repeated views of the same profile do not burn GitHub rate limit.
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	username := c.Params("username")

	var repos json.RawMessage
	err := cache.Aside(c.UserContext(), cache.GithubKey(username), &repos, cache.GithubTTL, func() error {
		fetched, err := s.github.ListRepos(c.UserContext(), username)
		if err != nil {
			return err
		}
		repos = fetched
		return nil
	})
	if err != nil {
		return s.respondError(c, err, fiber.StatusNotFound)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(repos)
}
