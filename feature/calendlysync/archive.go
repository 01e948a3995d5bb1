package calendlysync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"meeting-sync/core/reconcile"
	"meeting-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ReportPrefix is the object prefix sync reports are written under.
const ReportPrefix = "sync-reports/"

const reportTimeLayout = "20060102T150405Z"

// ErrReportNotFound is returned when a report object does not exist.
var ErrReportNotFound = errors.New("sync report not found")

// Archive stores finished pass reports in object storage.
type Archive struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewArchive creates an archive writing to bucket.
func NewArchive(client storage.Client, bucket string, logger *zap.Logger) *Archive {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Archive{client: client, bucket: bucket, logger: logger}
}

// ReportKey returns the object key of a report. Keys sort by start time.
func ReportKey(report reconcile.Report) string {
	return fmt.Sprintf("%s%s-%s.json", ReportPrefix, report.StartedAt.UTC().Format(reportTimeLayout), report.RunID)
}

// Save uploads the report as JSON.
func (a *Archive) Save(ctx context.Context, report reconcile.Report) (string, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	key := ReportKey(report)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", key, err)
	}
	return key, nil
}

// Hook archives every finished pass. Failures are logged, never propagated.
func (a *Archive) Hook(ctx context.Context, report reconcile.Report) {
	key, err := a.Save(ctx, report)
	if err != nil {
		a.logger.Error("Failed to archive sync report", zap.String("run_id", report.RunID), zap.Error(err))
		return
	}
	a.logger.Debug("Archived sync report", zap.String("key", key))
}

// List returns report names, newest first, at most limit entries (0 = all).
func (a *Archive) List(ctx context.Context, limit int) ([]string, error) {
	var names []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: ReportPrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		names = append(names, path.Base(obj.Key))
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Get loads one report by the name returned from List.
func (a *Archive) Get(ctx context.Context, name string) (reconcile.Report, error) {
	var report reconcile.Report
	if name == "" || strings.ContainsAny(name, "/\\") || !strings.HasSuffix(name, ".json") {
		return report, ErrReportNotFound
	}

	obj, err := a.client.GetObject(ctx, a.bucket, ReportPrefix+name, minio.GetObjectOptions{})
	if err != nil {
		return report, translateMissing(err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return report, translateMissing(err)
	}
	if err := json.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("failed to decode report %s: %w", name, err)
	}
	return report, nil
}

func translateMissing(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrReportNotFound
	}
	return fmt.Errorf("failed to read report: %w", err)
}
