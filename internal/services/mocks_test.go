package services

import (
	"blogmarket_backend/internal/models"
	"blogmarket_backend/internal/repositories"

	"gorm.io/gorm"
)

// Моки репозиториев для юнит-тестов сервисов: работают в памяти
// и игнорируют переданный *gorm.DB.

type mockUserRepo struct {
	users map[string]*models.User // по ID
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*models.User{}}
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) FindByPhone(db *gorm.DB, phone string) (*models.User, error) {
	for _, u := range m.users {
		if u.PhoneNumber == phone {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) Create(db *gorm.DB, user *models.User) error {
	for _, u := range m.users {
		if u.PhoneNumber == user.PhoneNumber {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = "user-" + user.PhoneNumber
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Update(db *gorm.DB, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	m.users[user.ID] = user
	return nil
}

type mockProfileRepo struct {
	profiles map[string]*models.Profile // по UserID

	updateCompletedErr error
	completedCalls     int
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: map[string]*models.Profile{}}
}

func (m *mockProfileRepo) Create(db *gorm.DB, profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = "profile-" + profile.UserID
	}
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockProfileRepo) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (m *mockProfileRepo) Update(db *gorm.DB, profile *models.Profile) error {
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockProfileRepo) UpdateCompleted(db *gorm.DB, userID string, completed bool) error {
	m.completedCalls++
	if m.updateCompletedErr != nil {
		return m.updateCompletedErr
	}
	if p, ok := m.profiles[userID]; ok {
		p.IsCompleted = completed
	}
	return nil
}

func (m *mockProfileRepo) UpdateParticipating(db *gorm.DB, userID string, participating bool) error {
	if p, ok := m.profiles[userID]; ok {
		p.IsParticipating = participating
	}
	return nil
}

type mockOrderRepo struct {
	orders map[string]*models.CreatingOrder // по ID
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: map[string]*models.CreatingOrder{}}
}

func (m *mockOrderRepo) Create(db *gorm.DB, order *models.CreatingOrder) error {
	if order.ID == "" {
		order.ID = "order-" + order.Article
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) ListProcessingByUser(db *gorm.DB, userID string) ([]models.CreatingOrder, error) {
	var out []models.CreatingOrder
	for _, o := range m.orders {
		if o.UserID == userID && o.Status == models.OrderStatusProcessing {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) FindByID(db *gorm.DB, orderID, userID string) (*models.CreatingOrder, error) {
	o, ok := m.orders[orderID]
	if !ok || o.UserID != userID {
		return nil, repositories.ErrOrderNotFound
	}
	return o, nil
}

func (m *mockOrderRepo) FindByIDForUpdate(tx *gorm.DB, orderID, userID string) (*models.CreatingOrder, error) {
	return m.FindByID(tx, orderID, userID)
}

func (m *mockOrderRepo) Update(db *gorm.DB, order *models.CreatingOrder) error {
	if _, ok := m.orders[order.ID]; !ok {
		return repositories.ErrOrderNotFound
	}
	m.orders[order.ID] = order
	return nil
}

type mockPurchaseRepo struct {
	purchases map[string]*models.Purchase // по ID
}

func newMockPurchaseRepo() *mockPurchaseRepo {
	return &mockPurchaseRepo{purchases: map[string]*models.Purchase{}}
}

func (m *mockPurchaseRepo) ListByTester(db *gorm.DB, testerID string) ([]models.Purchase, error) {
	var out []models.Purchase
	for _, p := range m.purchases {
		if p.TesterID != nil && *p.TesterID == testerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPurchaseRepo) FindByIDForTester(db *gorm.DB, purchaseID, testerID string) (*models.Purchase, error) {
	p, ok := m.purchases[purchaseID]
	if !ok || p.TesterID == nil || *p.TesterID != testerID {
		return nil, repositories.ErrPurchaseNotFound
	}
	return p, nil
}

func (m *mockPurchaseRepo) UpsertByOrder(tx *gorm.DB, orderID string, purchase *models.Purchase) error {
	for _, existing := range m.purchases {
		if existing.CreatingOrderID != nil && *existing.CreatingOrderID == orderID {
			existing.TesterID = purchase.TesterID
			existing.ExternalID = purchase.ExternalID
			existing.Article = purchase.Article
			existing.PickupPoint = purchase.PickupPoint
			existing.Metadata = purchase.Metadata
			existing.Status = purchase.Status
			*purchase = *existing
			return nil
		}
	}
	if purchase.ID == "" {
		purchase.ID = "purchase-" + orderID
	}
	purchase.CreatingOrderID = &orderID
	m.purchases[purchase.ID] = purchase
	return nil
}

type mockReportRepo struct {
	reports map[string]*models.TestReport // по PurchaseID
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{reports: map[string]*models.TestReport{}}
}

func (m *mockReportRepo) FindByPurchaseID(db *gorm.DB, purchaseID string) (*models.TestReport, error) {
	if r, ok := m.reports[purchaseID]; ok {
		return r, nil
	}
	return nil, repositories.ErrReportNotFound
}

func (m *mockReportRepo) Create(db *gorm.DB, report *models.TestReport) error {
	if report.ID == "" {
		report.ID = "report-" + report.PurchaseID
	}
	m.reports[report.PurchaseID] = report
	return nil
}

func (m *mockReportRepo) Update(db *gorm.DB, report *models.TestReport) error {
	if _, ok := m.reports[report.PurchaseID]; !ok {
		return repositories.ErrReportNotFound
	}
	m.reports[report.PurchaseID] = report
	return nil
}
