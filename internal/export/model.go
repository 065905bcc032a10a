package export

// Supported output formats for the schedule report.
const (
	FormatTXT   = "txt"
	FormatPDF   = "pdf"
	FormatExcel = "xlsx"
)

// Content types returned alongside the rendered report.
const (
	contentTypeTXT   = "text/plain; charset=utf-8"
	contentTypePDF   = "application/pdf"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
