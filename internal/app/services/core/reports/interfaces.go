package reports

import (
	"context"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	ComposeReport(ctx context.Context, request *requests.ComposeReportRequest) (*responses.ReportResponse, error)
}
