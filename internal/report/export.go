package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// Writer renders a plan into one output format.
type Writer func(p *domain.StudyPlan, w io.Writer) error

// WriteJSON writes the whole plan as indented JSON.
func WriteJSON(p *domain.StudyPlan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return nil
}

// SaveFile renders the plan with write into path, creating parent
// directories as needed.
func SaveFile(path string, p *domain.StudyPlan, write Writer) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return write(p, f)
}
