package services

import (
	"fmt"
	"sort"
	"sync"

	"table-tap/models"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// QRGenerator produces the PNG printed on each table; injected so tests
// avoid the image encoder.
type QRGenerator interface {
	Generate(data string, size int) ([]byte, error)
}

type DefaultQRGenerator struct{}

func (DefaultQRGenerator) Generate(data string, size int) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, size)
}

// TableService backs the admin tables page and the QR generator: each table
// gets a code pointing customers at the menu with the table preselected.
type TableService struct {
	mu      sync.RWMutex
	tables  map[string]models.Table
	qr      QRGenerator
	baseURL string
}

func NewTableService(qr QRGenerator, baseURL string) *TableService {
	if qr == nil {
		qr = DefaultQRGenerator{}
	}
	return &TableService{
		tables:  make(map[string]models.Table),
		qr:      qr,
		baseURL: baseURL,
	}
}

func (s *TableService) List() []models.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Table, 0, len(s.tables))
	for _, table := range s.tables {
		result = append(result, table)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result
}

func (s *TableService) Get(id string) (models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.tables[id]
	if !ok {
		return models.Table{}, ErrTableNotFound
	}
	return table, nil
}

func (s *TableService) Create(req models.CreateTableRequest) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tables {
		if existing.Number == req.Number {
			return models.Table{}, ErrTableNumberTaken
		}
	}

	shape := req.Shape
	if shape == "" {
		shape = "square"
	}
	table := models.Table{
		ID:       uuid.New().String(),
		Number:   req.Number,
		Capacity: req.Capacity,
		Shape:    shape,
		Status:   models.TableAvailable,
	}
	s.tables[table.ID] = table
	return table, nil
}

func (s *TableService) Update(id string, req models.UpdateTableRequest) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[id]
	if !ok {
		return models.Table{}, ErrTableNotFound
	}

	if req.Number != nil && *req.Number != table.Number {
		for _, existing := range s.tables {
			if existing.Number == *req.Number {
				return models.Table{}, ErrTableNumberTaken
			}
		}
		table.Number = *req.Number
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.Shape != "" {
		table.Shape = req.Shape
	}
	if req.Status != "" {
		table.Status = models.TableStatus(req.Status)
	}

	s.tables[id] = table
	return table, nil
}

func (s *TableService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[id]; !ok {
		return ErrTableNotFound
	}
	delete(s.tables, id)
	return nil
}

// QRCode renders the table's code as a PNG. Size is clamped to a sane
// printable range.
func (s *TableService) QRCode(id string, size int) ([]byte, error) {
	table, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if size < 128 {
		size = 256
	}
	if size > 1024 {
		size = 1024
	}

	data := fmt.Sprintf("%s/menu?table=%d", s.baseURL, table.Number)
	return s.qr.Generate(data, size)
}
