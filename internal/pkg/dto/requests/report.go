package requests

type ComposeReportRequest struct {
	PatientUUID string `json:"patientUuid" validate:"required,uuid4"`
	ReportType  string `json:"reportType" validate:"required,oneof=gate-pass post-mortem"`
}
