package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"blogmarket_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UniquePhone генерирует уникальный номер для параллельных тестов
func UniquePhone() string {
	return fmt.Sprintf("+7999%07d", time.Now().UnixNano()%10000000)
}

// RegisterAndLogin регистрирует пользователя через API и возвращает токен
func RegisterAndLogin(t *testing.T, ts *TestServer, phone, password string) (string, string) {
	t.Helper()

	registerBody := map[string]interface{}{
		"phone_number": phone,
		"password":     password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/register/", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Регистрация должна быть успешной. Ответ: "+bodyStr)

	var authResponse struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	err := json.Unmarshal([]byte(bodyStr), &authResponse)
	require.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, authResponse.Token, "Токен не должен быть пустым")

	return authResponse.Token, authResponse.User.ID
}

// CompleteProfile заполняет все обязательные поля анкеты напрямую в БД
func CompleteProfile(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()

	age := 27
	hasSelfEmployment := true
	updates := map[string]interface{}{
		"full_name":                   "Тестовый Блогер",
		"has_self_employment":         hasSelfEmployment,
		"ready_for_self_employment":   "yes",
		"main_blog_link":              "https://instagram.com/test",
		"social_links":                datatypes.JSON(`["https://t.me/test"]`),
		"country":                     "Россия",
		"city":                        "Москва",
		"age":                         age,
		"gender":                      "M",
		"coverage_regions":            "Москва",
		"platforms":                   datatypes.JSON(`["instagram"]`),
		"blog_topics":                 datatypes.JSON(`["lifestyle"]`),
		"blog_description":            "Тестовый блог",
		"blog_experience":             "1-2years",
		"publication_frequency":       "daily",
		"subscribers_by_platform":     datatypes.JSON(`[{"platform":"instagram","count":10000}]`),
		"average_reach":               datatypes.JSON(`[{"platform":"instagram","reach":2000}]`),
		"engagement_level":            "high",
		"ready_to_share_results":      "yes",
		"ready_for_paid_ads":          "yes_no_problem",
		"collaboration_formats":       datatypes.JSON(`["post"]`),
		"ad_pricing":                  datatypes.JSON(`[{"format":"post","price":5000}]`),
		"ready_for_barter":            "yes",
		"barter_categories":           datatypes.JSON(`["cosmetics"]`),
		"ready_for_brand_projects":    "yes",
		"blog_management":             "myself",
		"ready_for_blogger_community": "yes",
		"consent_privacy":             true,
		"is_completed":                true,
	}

	err := db.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(updates).Error
	require.NoError(t, err, "Не удалось заполнить анкету")
}

// CreateTestOrder создает заказ в статусе PROCESSING напрямую в БД
func CreateTestOrder(t *testing.T, db *gorm.DB, userID, article string) *models.CreatingOrder {
	t.Helper()

	order := &models.CreatingOrder{
		UserID:  userID,
		Article: article,
		Title:   "Тестовый заказ",
		Status:  models.OrderStatusProcessing,
		Payload: datatypes.JSON(`{"source":"test"}`),
	}
	err := db.Create(order).Error
	require.NoError(t, err, "Не удалось создать тестовый заказ")
	return order
}
