package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cafe-storefront/config"
	"cafe-storefront/models"
	"cafe-storefront/repositories"
)

const menuCacheTTL = 5 * time.Minute

// CatalogService reads the catalog owned by the hosted backend. The core
// never writes catalog data.
type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		catalogRepo: repositories.NewCatalogRepository(),
	}
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.catalogRepo.GetActiveCategories(ctx)
}

func menuCacheKey(category string) string {
	if category == "" {
		return "menu_items_all"
	}
	return fmt.Sprintf("menu_items_%s", category)
}

// GetMenuItems returns active items with their variations and add-ons,
// serving from Redis when available. The catalog is read-only so cached
// entries simply expire; there is no invalidation path.
func (s *CatalogService) GetMenuItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	cacheKey := menuCacheKey(category)

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			items := []models.MenuItem{}
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.catalogRepo.GetActiveMenuItems(ctx, category)
	if err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(items); err == nil {
			config.RedisClient.Set(ctx, cacheKey, string(jsonData), menuCacheTTL)
		}
	}

	return items, nil
}

func (s *CatalogService) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.catalogRepo.GetMenuItemByID(ctx, id)
}
