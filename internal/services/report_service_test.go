package services

import (
	"testing"

	"blogmarket_backend/internal/models"
	"blogmarket_backend/internal/services/dto"
	"blogmarket_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReportService() (*mockProfileRepo, *mockPurchaseRepo, *mockReportRepo, ReportService) {
	profileRepo := newMockProfileRepo()
	purchaseRepo := newMockPurchaseRepo()
	reportRepo := newMockReportRepo()
	svc := NewReportService(profileRepo, purchaseRepo, reportRepo)
	return profileRepo, purchaseRepo, reportRepo, svc
}

func testerPurchase(id, testerID, article string) *models.Purchase {
	tester := testerID
	p := &models.Purchase{
		TesterID: &tester,
		Article:  article,
		Status:   models.PurchaseStatusPending,
	}
	p.ID = id
	return p
}

func TestGetOrCreateReport_DefaultsFromProfile(t *testing.T) {
	profileRepo, purchaseRepo, reportRepo, svc := setupReportService()

	profileRepo.profiles["user-1"] = &models.Profile{
		UserID:   "user-1",
		FullName: "Иван Иванов",
		Contact:  "@ivan",
	}
	purchaseRepo.purchases["p-1"] = testerPurchase("p-1", "user-1", "SKU-9")

	resp, err := svc.GetOrCreateReport(nil, "user-1", "p-1")
	require.NoError(t, err)

	// отчет создан лениво с умолчаниями из анкеты и закупки
	assert.Equal(t, "Иван Иванов", resp.FullName)
	assert.Equal(t, "@ivan", resp.Contact)
	assert.Equal(t, "SKU-9", resp.ItemName)
	assert.Len(t, reportRepo.reports, 1)

	// повторное чтение возвращает тот же отчет, а не создает новый
	again, err := svc.GetOrCreateReport(nil, "user-1", "p-1")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, again.ID)
	assert.Len(t, reportRepo.reports, 1)
}

func TestGetOrCreateReport_NotOwned(t *testing.T) {
	_, purchaseRepo, _, svc := setupReportService()
	purchaseRepo.purchases["p-1"] = testerPurchase("p-1", "someone-else", "SKU-9")

	_, err := svc.GetOrCreateReport(nil, "user-1", "p-1")

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUpdateReport_EmptyFieldsKeepDefaults(t *testing.T) {
	profileRepo, purchaseRepo, _, svc := setupReportService()

	profileRepo.profiles["user-1"] = &models.Profile{
		UserID:   "user-1",
		FullName: "Иван Иванов",
		Contact:  "@ivan",
	}
	purchaseRepo.purchases["p-1"] = testerPurchase("p-1", "user-1", "SKU-9")

	overall := 5
	resp, err := svc.UpdateReport(nil, "user-1", "p-1", &dto.ReportRequest{
		Category:     "Косметика",
		ScoreOverall: &overall,
		ReviewText:   "Все хорошо",
	})
	require.NoError(t, err)

	// явные поля перекрыли умолчания, пустые - нет
	assert.Equal(t, "Иван Иванов", resp.FullName)
	assert.Equal(t, "Косметика", resp.Category)
	assert.Equal(t, "SKU-9", resp.ItemName)
	require.NotNil(t, resp.ScoreOverall)
	assert.Equal(t, 5, *resp.ScoreOverall)
	assert.Equal(t, "Все хорошо", resp.ReviewText)
}

func TestCreateReport_RequiresPurchaseID(t *testing.T) {
	_, _, _, svc := setupReportService()

	_, err := svc.CreateReport(nil, "user-1", &dto.ReportRequest{})

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestListPurchases_HasReportFlag(t *testing.T) {
	_, purchaseRepo, _, svc := setupReportService()

	withReport := testerPurchase("p-1", "user-1", "SKU-1")
	withReport.Report = &models.TestReport{PurchaseID: "p-1"}
	purchaseRepo.purchases["p-1"] = withReport
	purchaseRepo.purchases["p-2"] = testerPurchase("p-2", "user-1", "SKU-2")
	purchaseRepo.purchases["p-3"] = testerPurchase("p-3", "other", "SKU-3")

	resp, err := svc.ListPurchases(nil, "user-1")
	require.NoError(t, err)
	require.Len(t, resp, 2)

	byID := map[string]bool{}
	for _, p := range resp {
		byID[p.ID] = p.HasReport
	}
	assert.True(t, byID["p-1"])
	assert.False(t, byID["p-2"])
}
