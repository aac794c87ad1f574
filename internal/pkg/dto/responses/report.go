package responses

type ReportResponse struct {
	ReportType  string            `json:"reportType"`
	PatientUUID string            `json:"patientUuid"`
	ObjectName  string            `json:"objectName"`
	Fields      map[string]string `json:"fields"`
	ComposedAt  string            `json:"composedAt"`
}
