package routes

import (
	"github.com/Mustafaa-nd/MNLab-Portfolio/storage"
	"github.com/Mustafaa-nd/MNLab-Portfolio/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Router wires the HTTP surface to the stores. One instance per app.
type Router struct {
	achievements *store.AchievementStore
	sessions     *store.SessionStore
	images       storage.ImageStore
	validate     *validator.Validate
	hub          *Hub
}

func New(achievements *store.AchievementStore, sessions *store.SessionStore, images storage.ImageStore) *Router {
	return &Router{
		achievements: achievements,
		sessions:     sessions,
		images:       images,
		validate:     validator.New(),
		hub:          NewHub(),
	}
}

func (rt *Router) Setup(app *fiber.App) {
	// Live like-count updates
	app.Get("/ws", rt.hub.Handler())

	app.Post("/login", rt.login)

	// Achievement routes; /recent and /:id/like must register before the
	// bare /:id routes so they win the match.
	achievements := app.Group("/achievements")
	achievements.Get("/", rt.listAchievements)
	achievements.Get("/recent", rt.recentAchievements)
	achievements.Get("/:id", rt.getAchievement)
	achievements.Post("/", rt.requireAdmin, rt.createAchievement)
	achievements.Put("/:id/like", rt.toggleLike)
	achievements.Put("/:id", rt.requireAdmin, rt.updateAchievement)
	achievements.Delete("/:id", rt.requireAdmin, rt.deleteAchievement)

	app.Get("/categories", rt.listCategories)
}
