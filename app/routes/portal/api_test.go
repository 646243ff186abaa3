package portal

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatenda10/sms-sub003/app/models"
	"github.com/tatenda10/sms-sub003/app/routes/fees"
)

func gatedApp(status *models.BalanceStatus) *fiber.App {
	app := fiber.New()
	app.Get("/results", func(c *fiber.Ctx) error {
		if denied := balanceGate(c, status); denied {
			return nil
		}
		return c.JSON(fiber.Map{
			"success": true,
			"report":  fiber.Map{"count": 3},
		})
	})
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestResultsDeniedWhileFeesOutstanding(t *testing.T) {
	app := gatedApp(fees.NewBalanceStatus("S100", 250))

	code, payload := getJSON(t, app, "/results")

	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "access_denied", payload["code"])
	assert.Equal(t, 250.0, payload["current_balance"])
	assert.NotContains(t, payload, "report")
}

func TestResultsServedWhenBalanceCleared(t *testing.T) {
	app := gatedApp(fees.NewBalanceStatus("S100", 0))

	code, payload := getJSON(t, app, "/results")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, payload["success"])
	assert.Contains(t, payload, "report")
	assert.NotContains(t, payload, "code")
}

func TestResultsServedWithCreditBalance(t *testing.T) {
	app := gatedApp(fees.NewBalanceStatus("S100", -15))

	code, payload := getJSON(t, app, "/results")

	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, payload, "report")
}
