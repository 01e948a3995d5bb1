package calendlysync_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"meeting-sync/core/reconcile"
	"meeting-sync/core/storage/mocks"
	"meeting-sync/feature/calendlysync"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(trigger calendlysync.Trigger, archive *calendlysync.Archive) *fiber.App {
	app := fiber.New()
	calendlysync.NewHandler(trigger, archive, zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandleSync_Success(t *testing.T) {
	slot := reconcile.NewSlot(func(ctx context.Context) (reconcile.Result, error) {
		return reconcile.Result{Processed: 4, Skipped: 1}, nil
	}, zap.NewNop())
	app := setupTestApp(slot, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body calendlysync.SyncResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, calendlysync.SyncMessage, body.Message)
	require.NotNil(t, body.Data)
	assert.Equal(t, 4, body.Data.Processed)
	assert.Equal(t, 1, body.Data.Skipped)
}

func TestHandleSync_FatalError(t *testing.T) {
	slot := reconcile.NewSlot(func(ctx context.Context) (reconcile.Result, error) {
		return reconcile.Result{}, errors.New("failed to resolve calendly user: rejected")
	}, zap.NewNop())
	app := setupTestApp(slot, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body calendlysync.SyncResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "rejected")
	assert.Nil(t, body.Data)
}

func TestHandleSync_ConcurrentRequestsShareOnePass(t *testing.T) {
	var runs atomic.Int32
	release := make(chan struct{})
	slot := reconcile.NewSlot(func(ctx context.Context) (reconcile.Result, error) {
		runs.Add(1)
		<-release
		return reconcile.Result{Processed: 1}, nil
	}, zap.NewNop())
	app := setupTestApp(slot, nil)

	var wg sync.WaitGroup
	codes := make([]int, 3)
	for i := range codes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := app.Test(httptest.NewRequest("POST", "/sync", nil), 5000)
			if err == nil {
				codes[i] = resp.StatusCode
			}
		}()
	}

	require.Eventually(t, slot.Running, time.Second, 5*time.Millisecond)
	// Give the other requests time to join the in-flight pass.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), runs.Load())
	assert.Equal(t, []int{200, 200, 200}, codes)
}

func TestHandleStatus(t *testing.T) {
	slot := reconcile.NewSlot(func(ctx context.Context) (reconcile.Result, error) {
		return reconcile.Result{Processed: 2}, nil
	}, zap.NewNop())
	app := setupTestApp(slot, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/status", nil))
	require.NoError(t, err)
	var before calendlysync.StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&before))
	assert.False(t, before.Data.Running)
	assert.Nil(t, before.Data.Last)

	_, err = slot.Run(context.Background(), reconcile.TriggerManual)
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest("GET", "/sync/status", nil))
	require.NoError(t, err)
	var after calendlysync.StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&after))
	require.NotNil(t, after.Data.Last)
	assert.Equal(t, 2, after.Data.Last.Result.Processed)
	assert.Equal(t, reconcile.TriggerManual, after.Data.Last.Trigger)
}

func TestHandleListReports_Disabled(t *testing.T) {
	app := setupTestApp(reconcile.NewSlot(nil, nil), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/reports", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleListReports(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "reports", mock.Anything).
		Return(objects(
			minio.ObjectInfo{Key: "sync-reports/20240101T000000Z-a.json"},
			minio.ObjectInfo{Key: "sync-reports/20240102T000000Z-b.json"},
		))
	app := setupTestApp(reconcile.NewSlot(nil, nil), calendlysync.NewArchive(client, "reports", nil))

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/reports?limit=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body calendlysync.ReportsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, []string{"20240102T000000Z-b.json"}, body.Data)
}

func TestHandleGetReport_NotFound(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "reports", mock.Anything, mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
	app := setupTestApp(reconcile.NewSlot(nil, nil), calendlysync.NewArchive(client, "reports", nil))

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/reports/20240102T000000Z-b.json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
