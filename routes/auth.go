package routes

import (
	"errors"
	"strings"

	"github.com/Mustafaa-nd/MNLab-Portfolio/store"

	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /login
func (rt *Router) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and password are required",
		})
	}

	token, err := rt.sessions.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid username or password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log in",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"role":    "admin",
	})
}

// requireAdmin guards the mutating achievement endpoints. The bearer
// token is checked against the sessions table on every call, not trusted
// from the client.
func (rt *Router) requireAdmin(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if token == "" || !rt.sessions.Validate(token) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Admin authorization required",
		})
	}
	return c.Next()
}
