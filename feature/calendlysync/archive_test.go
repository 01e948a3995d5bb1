package calendlysync_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"meeting-sync/core/reconcile"
	"meeting-sync/core/storage/mocks"
	"meeting-sync/feature/calendlysync"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleReport() reconcile.Report {
	started := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	return reconcile.Report{
		RunID:      "run-1",
		Trigger:    reconcile.TriggerTimer,
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
		Result:     reconcile.Result{Processed: 3, Skipped: 1, Failed: 1},
	}
}

func objects(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func TestReportKey(t *testing.T) {
	assert.Equal(t, "sync-reports/20240506T070809Z-run-1.json", calendlysync.ReportKey(sampleReport()))
}

func TestArchive_Save(t *testing.T) {
	client := new(mocks.Client)
	var uploaded []byte
	client.On("PutObject", mock.Anything, "reports", "sync-reports/20240506T070809Z-run-1.json", mock.Anything, mock.Anything, mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "application/json"
	})).Run(func(args mock.Arguments) {
		uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
	}).Return(minio.UploadInfo{}, nil)

	archive := calendlysync.NewArchive(client, "reports", zap.NewNop())
	key, err := archive.Save(context.Background(), sampleReport())

	require.NoError(t, err)
	assert.Equal(t, "sync-reports/20240506T070809Z-run-1.json", key)

	var decoded reconcile.Report
	require.NoError(t, json.Unmarshal(uploaded, &decoded))
	assert.Equal(t, 3, decoded.Result.Processed)
	assert.Equal(t, reconcile.TriggerTimer, decoded.Trigger)
	client.AssertExpectations(t)
}

func TestArchive_HookSwallowsErrors(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket unreachable"))

	archive := calendlysync.NewArchive(client, "reports", zap.NewNop())

	assert.NotPanics(t, func() {
		archive.Hook(context.Background(), sampleReport())
	})
	client.AssertExpectations(t)
}

func TestArchive_ListNewestFirst(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "reports", minio.ListObjectsOptions{Prefix: calendlysync.ReportPrefix, Recursive: true}).
		Return(objects(
			minio.ObjectInfo{Key: "sync-reports/20240101T000000Z-a.json"},
			minio.ObjectInfo{Key: "sync-reports/20240301T000000Z-c.json"},
			minio.ObjectInfo{Key: "sync-reports/notes.txt"},
			minio.ObjectInfo{Key: "sync-reports/20240201T000000Z-b.json"},
		))

	archive := calendlysync.NewArchive(client, "reports", zap.NewNop())

	names, err := archive.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"20240301T000000Z-c.json", "20240201T000000Z-b.json"}, names)
}

func TestArchive_ListEmpty(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "reports", mock.Anything).Return(objects())

	names, err := calendlysync.NewArchive(client, "reports", nil).List(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestArchive_ListError(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "reports", mock.Anything).
		Return(objects(minio.ObjectInfo{Err: errors.New("access denied")}))

	_, err := calendlysync.NewArchive(client, "reports", nil).List(context.Background(), 0)
	assert.ErrorContains(t, err, "access denied")
}

func TestArchive_Get(t *testing.T) {
	data, err := json.Marshal(sampleReport())
	require.NoError(t, err)

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "reports", "sync-reports/20240506T070809Z-run-1.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(data)), nil)

	report, err := calendlysync.NewArchive(client, "reports", nil).Get(context.Background(), "20240506T070809Z-run-1.json")
	require.NoError(t, err)
	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, 1, report.Result.Failed)
}

func TestArchive_GetMissing(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "reports", mock.Anything, mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})

	archive := calendlysync.NewArchive(client, "reports", nil)

	_, err := archive.Get(context.Background(), "20240506T070809Z-run-1.json")
	assert.ErrorIs(t, err, calendlysync.ErrReportNotFound)

	_, err = archive.Get(context.Background(), "../secrets.json")
	assert.ErrorIs(t, err, calendlysync.ErrReportNotFound)
}

func TestArchive_GetMalformed(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "reports", mock.Anything, mock.Anything).
		Return(io.NopCloser(strings.NewReader("{not json")), nil)

	_, err := calendlysync.NewArchive(client, "reports", nil).Get(context.Background(), "x.json")
	assert.ErrorContains(t, err, "failed to decode report")
}
