package contracts

import "context"

type ReportStorage interface {
	UploadReport(ctx context.Context, objectName string, content []byte, contentType string) (string, error)
}
