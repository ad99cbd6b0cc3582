package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los stores del tenant. Sin mutex: los tests de casos de
// uso son secuenciales.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyStore struct {
	companies map[string]*entity.Company
}

func newFakeCompanyStore(companies ...*entity.Company) *fakeCompanyStore {
	s := &fakeCompanyStore{companies: make(map[string]*entity.Company)}
	for _, c := range companies {
		s.companies[c.ID] = c
	}
	return s
}

func (s *fakeCompanyStore) Create(_ context.Context, c *entity.Company) error {
	for _, existing := range s.companies {
		if existing.NIT == c.NIT {
			return domain.ErrDuplicate
		}
	}
	s.companies[c.ID] = c
	return nil
}

func (s *fakeCompanyStore) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := s.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *fakeCompanyStore) GetByNIT(_ context.Context, nit string) (*entity.Company, error) {
	for _, c := range s.companies {
		if c.NIT == nit {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeCompanyStore) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeCompanyStore) Update(_ context.Context, c *entity.Company) error {
	if _, ok := s.companies[c.ID]; !ok {
		return domain.ErrNoRowsAffected
	}
	s.companies[c.ID] = c
	return nil
}

func (s *fakeCompanyStore) Delete(_ context.Context, id string) error {
	if _, ok := s.companies[id]; !ok {
		return domain.ErrNoRowsAffected
	}
	delete(s.companies, id)
	return nil
}

type fakeDriverStore struct {
	drivers map[string]*entity.Driver
}

func newFakeDriverStore(drivers ...*entity.Driver) *fakeDriverStore {
	s := &fakeDriverStore{drivers: make(map[string]*entity.Driver)}
	for _, d := range drivers {
		s.drivers[d.ID] = d
	}
	return s
}

func (s *fakeDriverStore) Create(_ context.Context, d *entity.Driver) error {
	s.drivers[d.ID] = d
	return nil
}

func (s *fakeDriverStore) GetByID(_ context.Context, id string) (*entity.Driver, error) {
	d, ok := s.drivers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (s *fakeDriverStore) GetByDocument(_ context.Context, document string) (*entity.Driver, error) {
	for _, d := range s.drivers {
		if d.Document == document {
			return d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeDriverStore) List(_ context.Context, _, _ int) ([]*entity.Driver, error) {
	out := make([]*entity.Driver, 0, len(s.drivers))
	for _, d := range s.drivers {
		out = append(out, d)
	}
	return out, nil
}

func (s *fakeDriverStore) ListByCompany(_ context.Context, companyID string) ([]*entity.Driver, error) {
	var out []*entity.Driver
	for _, d := range s.drivers {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *fakeDriverStore) Update(_ context.Context, d *entity.Driver) error {
	if _, ok := s.drivers[d.ID]; !ok {
		return domain.ErrNoRowsAffected
	}
	s.drivers[d.ID] = d
	return nil
}

func (s *fakeDriverStore) Delete(_ context.Context, id string) error {
	if _, ok := s.drivers[id]; !ok {
		return domain.ErrNoRowsAffected
	}
	delete(s.drivers, id)
	return nil
}

type fakeWeeklyStore struct {
	weeklies map[string]*entity.WeeklyProcessing
}

func newFakeWeeklyStore() *fakeWeeklyStore {
	return &fakeWeeklyStore{weeklies: make(map[string]*entity.WeeklyProcessing)}
}

func (s *fakeWeeklyStore) Create(_ context.Context, wp *entity.WeeklyProcessing) error {
	for _, existing := range s.weeklies {
		if existing.DriverID == wp.DriverID && existing.WeekStart.Equal(wp.WeekStart) {
			return domain.ErrDuplicate
		}
	}
	s.weeklies[wp.ID] = wp
	return nil
}

func (s *fakeWeeklyStore) GetByID(_ context.Context, id string) (*entity.WeeklyProcessing, error) {
	wp, ok := s.weeklies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return wp, nil
}

func (s *fakeWeeklyStore) GetByDriverWeek(_ context.Context, driverID string, weekStart time.Time) (*entity.WeeklyProcessing, error) {
	for _, wp := range s.weeklies {
		if wp.DriverID == driverID && wp.WeekStart.Equal(weekStart) {
			return wp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeWeeklyStore) List(_ context.Context, _, _ int) ([]*entity.WeeklyProcessing, error) {
	out := make([]*entity.WeeklyProcessing, 0, len(s.weeklies))
	for _, wp := range s.weeklies {
		out = append(out, wp)
	}
	return out, nil
}

func (s *fakeWeeklyStore) ListByDriver(_ context.Context, driverID string) ([]*entity.WeeklyProcessing, error) {
	var out []*entity.WeeklyProcessing
	for _, wp := range s.weeklies {
		if wp.DriverID == driverID {
			out = append(out, wp)
		}
	}
	return out, nil
}

func (s *fakeWeeklyStore) Update(_ context.Context, wp *entity.WeeklyProcessing) error {
	if _, ok := s.weeklies[wp.ID]; !ok {
		return domain.ErrNoRowsAffected
	}
	s.weeklies[wp.ID] = wp
	return nil
}

func (s *fakeWeeklyStore) Delete(_ context.Context, id string) error {
	if _, ok := s.weeklies[id]; !ok {
		return domain.ErrNoRowsAffected
	}
	delete(s.weeklies, id)
	return nil
}

type fakePaymentStore struct {
	payments map[string]*entity.Payment
	history  []*entity.PaymentHistory
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: make(map[string]*entity.Payment)}
}

func (s *fakePaymentStore) record(p *entity.Payment, action string) {
	s.history = append(s.history, &entity.PaymentHistory{
		ID:        p.ID + "-" + action,
		PaymentID: p.ID,
		Action:    action,
		Amount:    p.Amount,
		Reference: p.Reference,
		ChangedAt: time.Now(),
	})
}

func (s *fakePaymentStore) Create(_ context.Context, p *entity.Payment) error {
	s.payments[p.ID] = p
	s.record(p, entity.PaymentActionCreated)
	return nil
}

func (s *fakePaymentStore) GetByID(_ context.Context, id string) (*entity.Payment, error) {
	p, ok := s.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *fakePaymentStore) List(_ context.Context, _, _ int) ([]*entity.Payment, error) {
	out := make([]*entity.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakePaymentStore) ListByCompany(_ context.Context, companyID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range s.payments {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePaymentStore) Update(_ context.Context, p *entity.Payment) error {
	if _, ok := s.payments[p.ID]; !ok {
		return domain.ErrNoRowsAffected
	}
	s.payments[p.ID] = p
	s.record(p, entity.PaymentActionUpdated)
	return nil
}

func (s *fakePaymentStore) Delete(_ context.Context, id string) error {
	if _, ok := s.payments[id]; !ok {
		return domain.ErrNoRowsAffected
	}
	delete(s.payments, id)
	return nil
}

func (s *fakePaymentStore) ListHistory(_ context.Context, paymentID string) ([]*entity.PaymentHistory, error) {
	var out []*entity.PaymentHistory
	for _, h := range s.history {
		if h.PaymentID == paymentID {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeBalanceStore struct {
	balances map[string]*entity.CompanyBalance
}

func newFakeBalanceStore() *fakeBalanceStore {
	return &fakeBalanceStore{balances: make(map[string]*entity.CompanyBalance)}
}

func (s *fakeBalanceStore) GetByCompany(_ context.Context, companyID string) (*entity.CompanyBalance, error) {
	b, ok := s.balances[companyID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (s *fakeBalanceStore) List(_ context.Context, _, _ int) ([]*entity.CompanyBalance, error) {
	out := make([]*entity.CompanyBalance, 0, len(s.balances))
	for _, b := range s.balances {
		out = append(out, b)
	}
	return out, nil
}

func (s *fakeBalanceStore) Adjust(_ context.Context, companyID string, delta decimal.Decimal, paidAt time.Time) error {
	b, ok := s.balances[companyID]
	if !ok {
		b = &entity.CompanyBalance{CompanyID: companyID, Balance: decimal.Zero}
		s.balances[companyID] = b
	}
	b.Balance = b.Balance.Add(delta)
	b.LastPaymentAt = &paidAt
	b.UpdatedAt = time.Now()
	return nil
}

type fakeOrderStore struct {
	orders map[string]*entity.TransportOrder
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]*entity.TransportOrder)}
}

func (s *fakeOrderStore) Create(_ context.Context, o *entity.TransportOrder) error {
	for _, existing := range s.orders {
		if existing.OrderNumber == o.OrderNumber {
			return domain.ErrDuplicate
		}
	}
	s.orders[o.ID] = o
	return nil
}

func (s *fakeOrderStore) GetByID(_ context.Context, id string) (*entity.TransportOrder, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *fakeOrderStore) GetByOrderNumber(_ context.Context, number int64) (*entity.TransportOrder, error) {
	for _, o := range s.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeOrderStore) List(_ context.Context, _, _ int) ([]*entity.TransportOrder, error) {
	out := make([]*entity.TransportOrder, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *fakeOrderStore) Update(_ context.Context, o *entity.TransportOrder) error {
	if _, ok := s.orders[o.ID]; !ok {
		return domain.ErrNoRowsAffected
	}
	s.orders[o.ID] = o
	return nil
}

func (s *fakeOrderStore) Delete(_ context.Context, id string) error {
	if _, ok := s.orders[id]; !ok {
		return domain.ErrNoRowsAffected
	}
	delete(s.orders, id)
	return nil
}

type fakeSequenceStore struct {
	current int64
}

func (s *fakeSequenceStore) Current(_ context.Context) (*entity.OrderSequence, error) {
	return &entity.OrderSequence{ID: 1, CurrentValue: s.current}, nil
}

func (s *fakeSequenceStore) Next(_ context.Context) (int64, error) {
	s.current++
	return s.current, nil
}

// Verificación de contratos de los fakes.
var (
	_ repository.CompanyStore          = (*fakeCompanyStore)(nil)
	_ repository.DriverStore           = (*fakeDriverStore)(nil)
	_ repository.WeeklyProcessingStore = (*fakeWeeklyStore)(nil)
	_ repository.PaymentStore          = (*fakePaymentStore)(nil)
	_ repository.CompanyBalanceStore   = (*fakeBalanceStore)(nil)
	_ repository.TransportOrderStore   = (*fakeOrderStore)(nil)
	_ repository.OrderSequenceStore    = (*fakeSequenceStore)(nil)
)

// Datos base compartidos por los tests.
func testCompany(id string, rate string) *entity.Company {
	return &entity.Company{
		ID:             id,
		Name:           "Transportes " + id,
		NIT:            "900." + id,
		CommissionRate: decimal.RequireFromString(rate),
		Status:         "active",
	}
}

func testDriver(id, companyID string) *entity.Driver {
	return &entity.Driver{
		ID:        id,
		CompanyID: companyID,
		Name:      "Conductor " + id,
		Document:  "CC-" + id,
		Status:    "active",
	}
}
