package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"meeting-sync/core/calendly"
	"meeting-sync/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, resolver staticResolver) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(Options{
		DB:       setupDB(t),
		Client:   mockClient,
		Bucket:   "test-bucket",
		Resolver: resolver,
	}, zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient
}

func TestHandleSchemaCheck(t *testing.T) {
	app, _ := setupTestApp(t, staticResolver{})

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, false, body["exists"])
}

func TestHandleSchemaCheck_Fix(t *testing.T) {
	app, _ := setupTestApp(t, staticResolver{})

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["matched"])
}

func TestHandleStorageCheck_Fix(t *testing.T) {
	app, mockClient := setupTestApp(t, staticResolver{})

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertCalled(t, "MakeBucket", mock.Anything, "test-bucket", minio.MakeBucketOptions{})
}

func TestHandleCredentialCheck(t *testing.T) {
	app, _ := setupTestApp(t, staticResolver{uri: "https://api.calendly.com/users/U1"})

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/calendly", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleCredentialCheck_Rejected(t *testing.T) {
	app, _ := setupTestApp(t, staticResolver{err: &calendly.AuthError{StatusCode: 401}})

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/calendly", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "rejected", body["status"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, staticResolver{uri: "u"})
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "schema")
	assert.Contains(t, body, "storage")
	assert.Contains(t, body, "calendly")
}
