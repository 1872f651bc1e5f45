package framework

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type report struct {
	APIBaseURL string    `yaml:"api_base_url"`
	Total      int       `yaml:"total"`
	Passed     int       `yaml:"passed"`
	Failed     int       `yaml:"failed"`
	OK         bool      `yaml:"ok"`
	Outcomes   []Outcome `yaml:"outcomes"`
}

// WriteReport writes every outcome and the summary counts as YAML.
func WriteReport(w io.Writer, apiBaseURL string, outcomes []Outcome) error {
	s := Summarize(outcomes)
	r := report{
		APIBaseURL: apiBaseURL,
		Total:      s.Total,
		Passed:     s.Passed,
		Failed:     s.Failed,
		OK:         s.OK(),
		Outcomes:   outcomes,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// WriteReportFile is WriteReport to a newly created file.
func WriteReportFile(path string, apiBaseURL string, outcomes []Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := WriteReport(f, apiBaseURL, outcomes); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
