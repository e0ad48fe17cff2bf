package routes

import (
	"errors"
	"log"

	"github.com/Mustafaa-nd/MNLab-Portfolio/models"
	"github.com/Mustafaa-nd/MNLab-Portfolio/store"

	"github.com/gofiber/fiber/v2"
)

// GET /achievements?category=&search=
func (rt *Router) listAchievements(c *fiber.Ctx) error {
	achievements, err := rt.achievements.List(c.Query("category"), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get achievements",
		})
	}

	return c.JSON(achievements)
}

// GET /achievements/recent
func (rt *Router) recentAchievements(c *fiber.Ctx) error {
	achievements, err := rt.achievements.Recent(3)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get achievements",
		})
	}

	return c.JSON(achievements)
}

// GET /achievements/:id
func (rt *Router) getAchievement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Achievement not found",
		})
	}

	achievement, err := rt.achievements.Get(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Achievement not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get achievement",
		})
	}

	return c.JSON(achievement)
}

// POST /achievements (multipart: title, description, category, image)
func (rt *Router) createAchievement(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image file is required",
		})
	}

	achievement := &models.Achievement{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
	}
	if err := rt.validate.Struct(achievement); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and description are required",
		})
	}

	locator, err := rt.images.Save(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save image",
		})
	}
	achievement.Image = locator

	if err := rt.achievements.Create(achievement); err != nil {
		// Best effort: don't leave an orphaned upload behind.
		if rerr := rt.images.Remove(locator); rerr != nil {
			log.Printf("Failed to remove image %s: %v", locator, rerr)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create achievement",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Achievement added successfully",
		"achievement": achievement,
	})
}

type updateAchievementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// PUT /achievements/:id
func (rt *Router) updateAchievement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Achievement not found",
		})
	}

	var req updateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if _, err := rt.achievements.Update(uint(id), req.Title, req.Description, req.Category); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Achievement not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update achievement",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Achievement updated successfully",
	})
}

type likeRequest struct {
	Action string `json:"action"`
}

// PUT /achievements/:id/like
func (rt *Router) toggleLike(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Achievement not found",
		})
	}

	var req likeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	achievement, err := rt.achievements.ToggleLike(uint(id), req.Action)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Achievement not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update likes",
		})
	}

	rt.hub.BroadcastLike(achievement)

	return c.JSON(fiber.Map{
		"message": "Likes updated successfully",
		"likes":   achievement.Likes,
		"liked":   achievement.Liked,
	})
}

// DELETE /achievements/:id
func (rt *Router) deleteAchievement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Achievement not found",
		})
	}

	achievement, err := rt.achievements.Delete(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Achievement not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete achievement",
		})
	}

	// Best effort: a leftover file never fails the delete.
	if err := rt.images.Remove(achievement.Image); err != nil {
		log.Printf("Failed to remove image %s: %v", achievement.Image, err)
	}

	return c.JSON(fiber.Map{
		"message": "Achievement deleted successfully",
	})
}

// GET /categories
func (rt *Router) listCategories(c *fiber.Ctx) error {
	categories, err := rt.achievements.Categories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}

	return c.JSON(categories)
}
