package ingest

import (
	"fmt"
	"path/filepath"

	"github.com/luminexhq/invoicevault/constants"
)

// Policy bounds a single ingestion batch. Violations are reported per file
// and never abort the rest of the batch.
type Policy struct {
	MaxBatchFiles int
	MaxFileBytes  int64
	AllowedExts   map[string]struct{}
	MaxRetries    int
}

func DefaultPolicy() Policy {
	return Policy{
		MaxBatchFiles: constants.MaxBatchFiles,
		MaxFileBytes:  constants.MaxFileBytes,
		AllowedExts:   constants.AllowedExtensions,
		MaxRetries:    constants.MaxTaskRetries,
	}
}

// CheckFile validates one file against the policy before any network call.
func (p Policy) CheckFile(name string, size int64) error {
	ext := constants.NormalizeExt(filepath.Ext(name))
	if _, ok := p.AllowedExts[ext]; ext == "" || !ok {
		return fmt.Errorf("unsupported or missing extension %q", ext)
	}
	if size > p.MaxFileBytes {
		return fmt.Errorf("file exceeds %d bytes", p.MaxFileBytes)
	}
	if size == 0 {
		return fmt.Errorf("file is empty")
	}
	return nil
}
