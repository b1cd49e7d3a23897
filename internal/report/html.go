package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/bugsniff/bugsniff/internal/types"
)

// htmlTemplate renders the standalone scan report page. Kept inline so
// the binary stays self-contained.
var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(f float64) string { return fmt.Sprintf("%.1f%%", f*100) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<title>bugsniff report</title>
<style>
  body { font-family: Arial, sans-serif; margin: 40px; }
  .summary { background: #f5f5f5; padding: 20px; border-radius: 8px; }
  .critical { color: #d32f2f; }
  .high { color: #f57c00; }
  .medium { color: #fbc02d; }
  .low { color: #388e3c; }
  table { width: 100%; border-collapse: collapse; margin-top: 20px; }
  th, td { padding: 12px; text-align: left; border-bottom: 1px solid #ddd; }
  th { background-color: #333; color: white; }
</style>
</head>
<body>
<h1>bugsniff report</h1>
<div class="summary">
  <h2>Summary</h2>
  <p><strong>Total Files:</strong> {{.TotalFiles}}</p>
  <p><strong>Files with Issues:</strong> {{.FilesWithBugs}}</p>
  <p><strong>Total Issues:</strong> {{.TotalIssues}}</p>
  <p><strong>Confidence:</strong> {{pct .Confidence}}</p>
  <h3>Severity Breakdown</h3>
  <ul>
    <li class="critical">Critical: {{.Breakdown.Critical}}</li>
    <li class="high">High: {{.Breakdown.High}}</li>
    <li class="medium">Medium: {{.Breakdown.Medium}}</li>
    <li class="low">Low: {{.Breakdown.Low}}</li>
  </ul>
</div>
<h2>Detailed Results</h2>
<table>
  <tr><th>File</th><th>Status</th><th>Issues</th><th>Confidence</th></tr>
{{- range .Files}}
  <tr>
    <td>{{.Path}}</td>
    <td>{{if .HasBugs}}issues{{else}}clean{{end}}</td>
    <td>{{.TotalIssues}}</td>
    <td>{{pct .Confidence}}</td>
  </tr>
{{- end}}
</table>
</body>
</html>
`))

// WriteHTML writes the project summary as a standalone HTML page.
func WriteHTML(w io.Writer, s types.ProjectSummary) error {
	return htmlTemplate.Execute(w, s)
}
