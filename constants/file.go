package constants

import "strings"

// Ingest policy defaults. Callers may override through ingest.Policy.
const (
	MaxBatchFiles   = 5
	MaxFileBytes    = 10 << 20 // 10 MiB
	MaxTaskRetries  = 3
	ReviewThreshold = 0.85 // extraction confidence below this flags needs_review
)

// FileTypes holds the allowed file types for the format field in ExtractionTask.
var FileTypes = []string{"PDF", "IMAGE"}

// AllowedExtensions holds the default allowed file extensions for invoice ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt checks a (possibly dotted, mixed-case) extension against the default set.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// FormatForExt maps an allowed extension to its ExtractionTask format.
func FormatForExt(ext string) string {
	if NormalizeExt(ext) == "pdf" {
		return "PDF"
	}
	return "IMAGE"
}
