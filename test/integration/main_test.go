package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"

	"blogmarket_backend/test/helpers"
)

const testAPIKey = "test-intake-key"

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает тестовый сервер (создает при первом вызове).
// Без DATABASE_URL интеграционные тесты пропускаются.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL не задан, интеграционные тесты пропущены")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("JWT_SECRET", "my_super_secret_key_for_tests_12345")
		os.Setenv("INTAKE_API_KEY", testAPIKey)

		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		globalTestServer.ClearTables()
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Cleaning up... ---")
		globalTestServer.Close()
	}

	os.Exit(code)
}
