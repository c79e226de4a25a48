package services

import (
	"sync"
	"time"

	"table-tap/models"

	"github.com/google/uuid"
)

// InventoryService backs the admin inventory page: plain CRUD plus the
// low-stock view used for reorder alerts.
type InventoryService struct {
	mu    sync.RWMutex
	items map[string]models.InventoryItem
	order []string
}

func NewInventoryService() *InventoryService {
	return &InventoryService{items: make(map[string]models.InventoryItem)}
}

func (s *InventoryService) List() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.InventoryItem, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.items[id])
	}
	return result
}

func (s *InventoryService) Get(id string) (models.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return models.InventoryItem{}, ErrInventoryNotFound
	}
	return item, nil
}

func (s *InventoryService) Create(req models.CreateInventoryItemRequest) models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.InventoryItem{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Category:        req.Category,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		ReorderPoint:    req.ReorderPoint,
		SupplierName:    req.SupplierName,
		SupplierContact: req.SupplierContact,
		LastRestocked:   time.Now(),
	}
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return item
}

func (s *InventoryService) Update(id string, req models.UpdateInventoryItemRequest) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return models.InventoryItem{}, ErrInventoryNotFound
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Quantity != nil {
		// A quantity bump is treated as a restock.
		if *req.Quantity > item.Quantity {
			item.LastRestocked = time.Now()
		}
		item.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.ReorderPoint != nil {
		item.ReorderPoint = *req.ReorderPoint
	}
	if req.SupplierName != "" {
		item.SupplierName = req.SupplierName
	}
	if req.SupplierContact != "" {
		item.SupplierContact = req.SupplierContact
	}

	s.items[id] = item
	return item, nil
}

func (s *InventoryService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrInventoryNotFound
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *InventoryService) LowStock() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.InventoryItem{}
	for _, id := range s.order {
		if item := s.items[id]; item.LowStock() {
			result = append(result, item)
		}
	}
	return result
}
