package inmemory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gigmarket/billing-service/internal/entities"
	"github.com/gigmarket/billing-service/internal/repository/database"
)

var _ database.Repository = (*inmemoryProvider)(nil)

type inmemoryProvider struct {
	mu         sync.Mutex
	users      map[uint]entities.User
	jobs       map[uint]entities.Job
	contracts  map[uint]entities.Contract
	invoices   map[uint]entities.Invoice
	wallets    map[uint]entities.Wallet // keyed by owning user id
	idSequence uint32
}

func NewInMemoryProvider() database.Repository {
	return &inmemoryProvider{
		users:     make(map[uint]entities.User),
		jobs:      make(map[uint]entities.Job),
		contracts: make(map[uint]entities.Contract),
		invoices:  make(map[uint]entities.Invoice),
		wallets:   make(map[uint]entities.Wallet),
	}
}

func (m *inmemoryProvider) Migrate() error {
	// Nothing to do here
	return nil
}

func (m *inmemoryProvider) nextID() uint {
	return uint(atomic.AddUint32(&m.idSequence, 1))
}

// RunSerializable serializes transactions with a single mutex and keeps a
// snapshot of all tables, so a failing fn observes full rollback just like
// a real store would provide.
func (m *inmemoryProvider) RunSerializable(ctx context.Context, fn func(database.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := copyTable(m.users)
	jobs := copyTable(m.jobs)
	contracts := copyTable(m.contracts)
	invoices := copyTable(m.invoices)
	wallets := copyTable(m.wallets)

	if err := fn(m); err != nil {
		m.users = users
		m.jobs = jobs
		m.contracts = contracts
		m.invoices = invoices
		m.wallets = wallets
		return err
	}

	return nil
}

func copyTable[T any](src map[uint]T) map[uint]T {
	dst := make(map[uint]T, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
