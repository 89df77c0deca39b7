package services

import (
	"context"
	"strings"
	"time"

	"go-food-ordering/apperrors"
	"go-food-ordering/database"
	"go-food-ordering/helpers"
	"go-food-ordering/media"
	"go-food-ordering/models"
	"go-food-ordering/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	FoodAdded         = "Food Added Successfully!"
	CategoryAdded     = "Category Added!"
	ImageUploadFailed = "Warning: Image upload failed. Saving without image."
	EditComingSoon    = "Edit feature coming soon!"
)

type FoodInput struct {
	Name         string `form:"name" json:"name"`
	Price        string `form:"price" json:"price"`
	Description  string `form:"description" json:"description"`
	Category     string `form:"category" json:"category"`
	Subcategory  string `form:"subcategory" json:"subcategory"`
	Allergens    string `form:"allergens" json:"allergens"`
	Availability string `form:"availability" json:"availability"`
}

type AddFoodResult struct {
	Food    models.Food `json:"food"`
	Message string      `json:"message"`
	Warning string      `json:"warning,omitempty"`
}

type CatalogService struct {
	foods      repository.FoodRepository
	categories repository.CategoryRepository
	uploader   media.Uploader
	feed       Subscriber
	log        *zap.Logger
	validate   *validator.Validate
	now        func() time.Time
}

func NewCatalogService(foods repository.FoodRepository, categories repository.CategoryRepository, uploader media.Uploader, feed Subscriber, log *zap.Logger) *CatalogService {
	return &CatalogService{
		foods:      foods,
		categories: categories,
		uploader:   uploader,
		feed:       feed,
		log:        log,
		validate:   newValidator(),
		now:        time.Now,
	}
}

// AddFood validates the record, then uploads the image when one is given. A
// failed upload is reported as a warning and the food is saved without an image.
func (s *CatalogService) AddFood(ctx context.Context, in FoodInput, image *media.File) (*AddFoodResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.Validation("Food name is required.")
	}

	food := models.Food{
		Name:         name,
		Price:        helpers.ParsePrice(in.Price),
		Description:  in.Description,
		Category:     in.Category,
		Subcategory:  in.Subcategory,
		Allergens:    in.Allergens,
		Availability: models.ParseAvailability(in.Availability),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.validate.Struct(food); err != nil {
		return nil, validationError(err)
	}

	var result AddFoodResult
	if image != nil && s.uploader != nil {
		url, err := s.uploader.Upload(ctx, *image)
		if err != nil {
			s.log.Warn("image upload failed, saving food without image", zap.String("food", name), zap.Error(err))
			result.Warning = ImageUploadFailed
		} else {
			food.Image = &url
		}
	}
	if err := s.foods.Create(ctx, &food); err != nil {
		return nil, err
	}
	result.Food = food
	result.Message = FoodAdded
	return &result, nil
}

func (s *CatalogService) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("Category name is required.")
	}
	category := models.Category{Name: name, CreatedAt: s.now().UTC()}
	if err := s.validate.Struct(category); err != nil {
		return nil, validationError(err)
	}
	if err := s.categories.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CatalogService) DeleteFood(ctx context.Context, id string, confirmed bool) error {
	if err := requireConfirmation(confirmed, "Deleting a food"); err != nil {
		return err
	}
	return s.foods.Delete(ctx, id)
}

// DeleteCategory leaves foods that name the category untouched.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string, confirmed bool) error {
	if err := requireConfirmation(confirmed, "Deleting a category"); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}

func (s *CatalogService) EditFood(ctx context.Context, id string) error {
	return apperrors.NotImplemented(EditComingSoon)
}

// ListFoods returns foods newest first.
func (s *CatalogService) ListFoods(ctx context.Context) ([]models.Food, error) {
	return s.foods.List(ctx)
}

func (s *CatalogService) WatchFoods(push func([]models.Food, error)) func() {
	return watch(s.feed, s.ListFoods, push, database.FoodCollection)
}

func (s *CatalogService) CategoryTable(ctx context.Context) ([]models.CategoryRow, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	foods, err := s.foods.List(ctx)
	if err != nil {
		return nil, err
	}
	return models.CountByCategory(categories, foods), nil
}

// WatchCategories reloads both collections on any change to either, so
// every push is counted from one consistent pair of lists.
func (s *CatalogService) WatchCategories(push func([]models.CategoryRow, error)) func() {
	return watch(s.feed, s.CategoryTable, push, database.CategoryCollection, database.FoodCollection)
}
