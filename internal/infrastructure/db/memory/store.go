// Package memory implements every repository port in process memory. It is
// selected with STORE_DRIVER=memory and backs the end-to-end tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
)

// Store holds one table per collection.
type Store struct {
	users     *userTable
	orders    *table[domain.Order]
	documents *table[domain.Document]
	messages  *table[domain.Message]
	contacts  *table[domain.ContactForm]
	quotes    *table[domain.QuoteForm]
	checks    *table[domain.StatusCheck]
}

func NewStore() *Store {
	return &Store{
		users: &userTable{byID: make(map[string]domain.User), byEmail: make(map[string]string)},
		orders: newTable(
			func(o *domain.Order) string { return o.UserID },
			func(o *domain.Order) time.Time { return o.CreatedAt },
		),
		documents: newTable(
			func(d *domain.Document) string { return d.UserID },
			func(d *domain.Document) time.Time { return d.UploadedAt },
		),
		messages: newTable(
			func(m *domain.Message) string { return m.UserID },
			func(m *domain.Message) time.Time { return m.CreatedAt },
		),
		contacts: newTable(
			func(*domain.ContactForm) string { return "" },
			func(c *domain.ContactForm) time.Time { return c.CreatedAt },
		),
		quotes: newTable(
			func(*domain.QuoteForm) string { return "" },
			func(q *domain.QuoteForm) time.Time { return q.CreatedAt },
		),
		checks: newTable(
			func(*domain.StatusCheck) string { return "" },
			func(s *domain.StatusCheck) time.Time { return s.Timestamp },
		),
	}
}

func (s *Store) Users() ports.UserRepository               { return s.users }
func (s *Store) Orders() ports.OrderRepository             { return orderRepo{s.orders} }
func (s *Store) Documents() ports.DocumentRepository       { return documentRepo{s.documents} }
func (s *Store) Messages() ports.MessageRepository         { return messageRepo{s.messages} }
func (s *Store) Leads() ports.LeadRepository               { return leadRepo{contacts: s.contacts, quotes: s.quotes} }
func (s *Store) StatusChecks() ports.StatusCheckRepository { return statusRepo{s.checks} }

// ContactCount and QuoteCount expose how many leads were stored; leads have
// no read path otherwise.
func (s *Store) ContactCount() int64 {
	return s.contacts.count(func(*domain.ContactForm) bool { return true })
}

func (s *Store) QuoteCount() int64 {
	return s.quotes.count(func(*domain.QuoteForm) bool { return true })
}

// ── users ────────────────────────────────────────────────────────────────────

type userTable struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

func (t *userTable) Create(_ context.Context, user *domain.User) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.byEmail[user.Email]; exists {
		return domain.ErrUserExists
	}
	if _, exists := t.byID[user.ID]; exists {
		return fmt.Errorf("insert user: duplicate id %s", user.ID)
	}
	t.byID[user.ID] = *user
	t.byEmail[user.Email] = user.ID
	return nil
}

func (t *userTable) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := t.byID[id]
	return &u, nil
}

func (t *userTable) FindByID(_ context.Context, id string) (*domain.User, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	u, ok := t.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (t *userTable) Update(_ context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	u, ok := t.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Phone != nil {
		u.Phone = upd.Phone
	}
	if upd.Address != nil {
		u.Address = upd.Address
	}
	t.byID[id] = u
	return &u, nil
}

// SetActive toggles the active flag. There is no HTTP path for this; it
// exists for operators and tests.
func (s *Store) SetActive(id string, active bool) error {
	s.users.mu.Lock()
	defer s.users.mu.Unlock()
	u, ok := s.users.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = active
	s.users.byID[id] = u
	return nil
}

// ── orders ───────────────────────────────────────────────────────────────────

type orderRepo struct{ t *table[domain.Order] }

func (r orderRepo) Create(_ context.Context, o *domain.Order) error {
	if !r.t.insert(o.ID, o) {
		return fmt.Errorf("insert order: duplicate id %s", o.ID)
	}
	return nil
}

func (r orderRepo) FindOwned(_ context.Context, userID, orderID string) (*domain.Order, error) {
	o, ok := r.t.findOwned(userID, orderID)
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (r orderRepo) ListOwned(_ context.Context, userID string, limit int) ([]*domain.Order, error) {
	return r.t.list(ownedBy(r.t, userID), limit), nil
}

func (r orderRepo) CountOwned(_ context.Context, userID string, statuses ...domain.OrderStatus) (int64, error) {
	return r.t.count(func(o *domain.Order) bool {
		if o.UserID != userID {
			return false
		}
		if len(statuses) == 0 {
			return true
		}
		for _, st := range statuses {
			if o.Status == st {
				return true
			}
		}
		return false
	}), nil
}

func (r orderRepo) UpdateOwned(_ context.Context, userID, orderID string, upd domain.OrderUpdate) (*domain.Order, error) {
	o, ok := r.t.updateOwned(userID, orderID, func(o *domain.Order) {
		if upd.IsEmpty() {
			return
		}
		if upd.Status != nil {
			o.Status = *upd.Status
		}
		if upd.TrackingNumber != nil {
			o.TrackingNumber = upd.TrackingNumber
		}
		if upd.EstimatedDelivery != nil {
			o.EstimatedDelivery = upd.EstimatedDelivery
		}
		if upd.Notes != nil {
			o.Notes = upd.Notes
		}
		if upd.TotalAmount != nil {
			o.TotalAmount = upd.TotalAmount
		}
		o.UpdatedAt = time.Now().UTC()
	})
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

// ── documents ────────────────────────────────────────────────────────────────

type documentRepo struct{ t *table[domain.Document] }

func (r documentRepo) Create(_ context.Context, d *domain.Document) error {
	if !r.t.insert(d.ID, d) {
		return fmt.Errorf("insert document: duplicate id %s", d.ID)
	}
	return nil
}

func (r documentRepo) FindOwned(_ context.Context, userID, documentID string) (*domain.Document, error) {
	d, ok := r.t.findOwned(userID, documentID)
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return d, nil
}

func (r documentRepo) ListForOrder(_ context.Context, userID, orderID string, limit int) ([]*domain.Document, error) {
	return r.t.list(func(d *domain.Document) bool {
		return d.UserID == userID && d.OrderID == orderID
	}, limit), nil
}

// ── messages ─────────────────────────────────────────────────────────────────

type messageRepo struct{ t *table[domain.Message] }

func (r messageRepo) Create(_ context.Context, m *domain.Message) error {
	if !r.t.insert(m.ID, m) {
		return fmt.Errorf("insert message: duplicate id %s", m.ID)
	}
	return nil
}

func (r messageRepo) ListOwned(_ context.Context, userID string, limit int) ([]*domain.Message, error) {
	return r.t.list(ownedBy(r.t, userID), limit), nil
}

func (r messageRepo) MarkRead(_ context.Context, userID, messageID string) error {
	if _, ok := r.t.updateOwned(userID, messageID, func(m *domain.Message) { m.IsRead = true }); !ok {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r messageRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	return r.t.count(func(m *domain.Message) bool { return m.UserID == userID && !m.IsRead }), nil
}

// ── leads & status checks ────────────────────────────────────────────────────

type leadRepo struct {
	contacts *table[domain.ContactForm]
	quotes   *table[domain.QuoteForm]
}

func (r leadRepo) CreateContact(_ context.Context, f *domain.ContactForm) error {
	if !r.contacts.insert(f.ID, f) {
		return fmt.Errorf("insert contact: duplicate id %s", f.ID)
	}
	return nil
}

func (r leadRepo) CreateQuote(_ context.Context, f *domain.QuoteForm) error {
	if !r.quotes.insert(f.ID, f) {
		return fmt.Errorf("insert quote: duplicate id %s", f.ID)
	}
	return nil
}

type statusRepo struct{ t *table[domain.StatusCheck] }

func (r statusRepo) Create(_ context.Context, c *domain.StatusCheck) error {
	if !r.t.insert(c.ID, c) {
		return fmt.Errorf("insert status check: duplicate id %s", c.ID)
	}
	return nil
}

func (r statusRepo) List(_ context.Context, limit int) ([]*domain.StatusCheck, error) {
	return r.t.list(func(*domain.StatusCheck) bool { return true }, limit), nil
}
