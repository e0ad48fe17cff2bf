// Package store implements the persistence layer over GORM: achievement
// CRUD with filtering, the like counter, and admin login sessions.
package store

import (
	"errors"
	"strings"

	"github.com/Mustafaa-nd/MNLab-Portfolio/models"

	"gorm.io/gorm"
)

// DefaultCategory is assigned when a record is created without one.
const DefaultCategory = "Other"

// Like toggle actions. Anything else is accepted but changes nothing.
const (
	ActionLike   = "like"
	ActionUnlike = "unlike"
)

var ErrNotFound = errors.New("achievement not found")

// likeEscaper quotes LIKE metacharacters so search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type AchievementStore struct {
	db *gorm.DB
}

func NewAchievementStore(db *gorm.DB) *AchievementStore {
	return &AchievementStore{db: db}
}

// List returns achievements matching the optional filters, newest first.
// Category is a case-insensitive equality match, search a case-insensitive
// substring match against title, description or category; both inputs are
// trimmed and the filters compose with AND.
func (s *AchievementStore) List(category, search string) ([]models.Achievement, error) {
	q := s.db.Model(&models.Achievement{})

	if category = strings.ToLower(strings.TrimSpace(category)); category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}
	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\' OR LOWER(category) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern,
		)
	}

	achievements := make([]models.Achievement, 0)
	if err := q.Order("created_at DESC, id DESC").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

// Recent returns the n most recently created achievements.
func (s *AchievementStore) Recent(n int) ([]models.Achievement, error) {
	achievements := make([]models.Achievement, 0, n)
	if err := s.db.Order("created_at DESC, id DESC").Limit(n).Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (s *AchievementStore) Get(id uint) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := s.db.First(&achievement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &achievement, nil
}

// Create persists a new achievement. The like state always starts clean
// and a blank category falls back to DefaultCategory.
func (s *AchievementStore) Create(achievement *models.Achievement) error {
	if strings.TrimSpace(achievement.Category) == "" {
		achievement.Category = DefaultCategory
	}
	achievement.Likes = 0
	achievement.Liked = false
	return s.db.Create(achievement).Error
}

// Update overwrites title and description and, when non-blank, the
// category. Image and like state are never touched here.
func (s *AchievementStore) Update(id uint, title, description, category string) (*models.Achievement, error) {
	achievement, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       title,
		"description": description,
	}
	if strings.TrimSpace(category) != "" {
		updates["category"] = category
	}
	if err := s.db.Model(achievement).Updates(updates).Error; err != nil {
		return nil, err
	}
	return achievement, nil
}

// Delete removes the achievement and returns it so the caller can release
// the stored image.
func (s *AchievementStore) Delete(id uint) (*models.Achievement, error) {
	achievement, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(achievement).Error; err != nil {
		return nil, err
	}
	return achievement, nil
}

// ToggleLike applies a like or unlike action as a single UPDATE expression
// so concurrent toggles cannot lose counts. The decrement bottoms out at
// zero; unknown actions leave the record untouched and report its current
// state.
func (s *AchievementStore) ToggleLike(id uint, action string) (*models.Achievement, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	switch action {
	case ActionLike:
		err := s.db.Model(&models.Achievement{}).Where("id = ?", id).
			UpdateColumns(map[string]interface{}{
				"likes": gorm.Expr("likes + 1"),
				"liked": true,
			}).Error
		if err != nil {
			return nil, err
		}
	case ActionUnlike:
		err := s.db.Model(&models.Achievement{}).Where("id = ?", id).
			UpdateColumns(map[string]interface{}{
				"likes": gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END"),
				"liked": false,
			}).Error
		if err != nil {
			return nil, err
		}
	}

	return s.Get(id)
}

// Categories returns the distinct category names in ascending order.
func (s *AchievementStore) Categories() ([]string, error) {
	categories := make([]string, 0)
	err := s.db.Model(&models.Achievement{}).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ResetLiked clears every liked flag. Runs once at startup: the flag
// mirrors the last viewer action, not a per-viewer relation, so a new
// process starts with no hearts filled.
func (s *AchievementStore) ResetLiked() error {
	return s.db.Model(&models.Achievement{}).
		Where("liked = ?", true).
		UpdateColumn("liked", false).Error
}
