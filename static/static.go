package static

import "embed"

// FS chứa các file tải về tĩnh (mẫu CSV upload ID).
//
//go:embed templates
var FS embed.FS
