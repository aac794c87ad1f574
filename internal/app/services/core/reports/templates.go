package reports

import "html/template"

// reportTemplate is the printable layout shared by both report types. The
// caller supplies the title and the ordered field rows.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: serif; margin: 40px; }
    h1 { font-size: 20px; border-bottom: 2px solid #000; padding-bottom: 8px; }
    table { width: 100%; border-collapse: collapse; margin-top: 16px; }
    td { padding: 6px 4px; border-bottom: 1px solid #ccc; vertical-align: top; }
    td.label { width: 35%; font-weight: bold; }
    .footer { margin-top: 48px; font-size: 12px; color: #555; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <table>
    <tr><td class="label">Name</td><td>{{.PatientName}}</td></tr>
    <tr><td class="label">Patient ID</td><td>{{.PatientUUID}}</td></tr>
    <tr><td class="label">Date of death</td><td>{{.DeathDate}}</td></tr>
    {{range .Rows}}<tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
    {{end}}
  </table>
  <div class="footer">Composed at {{.ComposedAt}}</div>
</body>
</html>
`))

type reportRow struct {
	Label string
	Value string
}

type reportTemplateData struct {
	Title       string
	PatientName string
	PatientUUID string
	DeathDate   string
	ComposedAt  string
	Rows        []reportRow
}
