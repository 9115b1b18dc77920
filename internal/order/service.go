package order

import (
	"errors"
	"sync"
)

var ErrOrderNotFound = errors.New("order not found")

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

type Order struct {
	ID         string
	Amount     int64
	Status     Status
	StatusNote string
}

// Service is what the payment callback needs from order storage.
type Service interface {
	MarkOrderAsPaid(id string) error
	MarkOrderAsFailed(id, reason string) error
}

// MemoryService keeps orders in memory. Durable storage of payment records
// belongs to the embedding application, so this is all the demo server
// needs.
type MemoryService struct {
	mu     sync.Mutex
	orders map[string]*Order
}

func NewMemoryService() *MemoryService {
	return &MemoryService{orders: make(map[string]*Order)}
}

// Create registers a pending order before the customer is redirected to the
// gateway.
func (s *MemoryService) Create(id string, amount int64) *Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := &Order{ID: id, Amount: amount, Status: StatusPending}
	s.orders[id] = o
	return o
}

// Get returns a copy of the order, if it exists.
func (s *MemoryService) Get(id string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, false
	}
	return *o, true
}

func (s *MemoryService) MarkOrderAsPaid(id string) error {
	return s.setStatus(id, StatusPaid, "")
}

func (s *MemoryService) MarkOrderAsFailed(id, reason string) error {
	return s.setStatus(id, StatusFailed, reason)
}

func (s *MemoryService) setStatus(id string, status Status, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	o.StatusNote = note
	return nil
}
