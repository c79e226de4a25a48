package services

import (
	"sync"

	"table-tap/models"

	"github.com/google/uuid"
)

// CatalogService is the read-mostly source of truth for what can be added
// to a cart. Customers only read it; the admin menu page mutates it.
type CatalogService struct {
	mu         sync.RWMutex
	categories []models.MenuCategory
	items      []models.MenuItem
}

func NewCatalogService() *CatalogService {
	s := &CatalogService{
		categories: []models.MenuCategory{
			{ID: "starters", Name: "Starters"},
			{ID: "main-courses", Name: "Main Courses"},
			{ID: "desserts", Name: "Desserts"},
		},
	}
	s.items = seedMenuItems()
	return s
}

func seedMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "bruschetta",
			Name:        "Bruschetta",
			Description: "Grilled bread rubbed with garlic and topped with olive oil, salt, and tomato.",
			Price:       8.99,
			Image:       "https://images.unsplash.com/photo-1572695157366-5e585ab2b69f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			Category:    "starters",
		},
		{
			ID:          "calamari",
			Name:        "Calamari",
			Description: "Crispy fried squid served with marinara sauce.",
			Price:       10.99,
			Image:       "https://images.unsplash.com/photo-1604909052743-94e838986d24?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			Category:    "starters",
		},
		{
			ID:          "steak",
			Name:        "Ribeye Steak",
			Description: "Grilled ribeye steak served with roasted vegetables and mashed potatoes.",
			Price:       24.99,
			Image:       "https://images.unsplash.com/photo-1546964124-0cce460f38ef?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			Category:    "main-courses",
		},
		{
			ID:          "salmon",
			Name:        "Grilled Salmon",
			Description: "Fresh Atlantic salmon grilled to perfection, served with quinoa and asparagus.",
			Price:       19.99,
			Image:       "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			Category:    "main-courses",
		},
		{
			ID:          "tiramisu",
			Name:        "Tiramisu",
			Description: "Classic Italian dessert made with layers of coffee-soaked ladyfingers and mascarpone cream.",
			Price:       7.99,
			Image:       "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			Category:    "desserts",
		},
		{
			ID:          "cheesecake",
			Name:        "New York Cheesecake",
			Description: "Rich and creamy cheesecake with a graham cracker crust, topped with fresh berries.",
			Price:       8.99,
			Image:       "https://images.unsplash.com/photo-1524351199678-941a58a3df50?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			Category:    "desserts",
		},
	}
}

// Categories returns the catalog grouped by category, copying item slices so
// callers cannot mutate catalog state.
func (s *CatalogService) Categories() []models.MenuCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.MenuCategory, 0, len(s.categories))
	for _, cat := range s.categories {
		grouped := models.MenuCategory{ID: cat.ID, Name: cat.Name}
		for _, item := range s.items {
			if item.Category == cat.ID {
				grouped.Items = append(grouped.Items, item)
			}
		}
		result = append(result, grouped)
	}
	return result
}

func (s *CatalogService) Items() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CatalogService) Item(id string) (models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.MenuItem{}, ErrItemNotFound
}

func (s *CatalogService) CreateItem(req models.CreateMenuItemRequest) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.MenuItem{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Image:           req.Image,
		Category:        req.Category,
		PreparationArea: req.PreparationArea,
	}
	s.items = append(s.items, item)
	s.ensureCategory(req.Category)
	return item, nil
}

func (s *CatalogService) UpdateItem(id string, req models.UpdateMenuItemRequest) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if req.Name != "" {
			s.items[i].Name = req.Name
		}
		if req.Description != "" {
			s.items[i].Description = req.Description
		}
		if req.Price != nil {
			s.items[i].Price = *req.Price
		}
		if req.Category != "" {
			s.items[i].Category = req.Category
			s.ensureCategory(req.Category)
		}
		if req.Image != "" {
			s.items[i].Image = req.Image
		}
		if req.PreparationArea != "" {
			s.items[i].PreparationArea = req.PreparationArea
		}
		return s.items[i], nil
	}
	return models.MenuItem{}, ErrItemNotFound
}

func (s *CatalogService) DeleteItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// ensureCategory registers an unseen category id so grouped listings pick it
// up. Caller must hold the write lock.
func (s *CatalogService) ensureCategory(id string) {
	if id == "" {
		return
	}
	for _, cat := range s.categories {
		if cat.ID == id {
			return
		}
	}
	s.categories = append(s.categories, models.MenuCategory{ID: id, Name: id})
}
