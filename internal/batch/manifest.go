package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one converted document in the output manifest.
type ManifestEntry struct {
	Document  string    `json:"document"`
	Error     string    `json:"error,omitempty"`
	TrackFile string    `json:"track_file,omitempty"`
	Previews  []string  `json:"previews,omitempty"`
	Converted int       `json:"converted"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
	Failures  []Failure `json:"failures,omitempty"`
}

// Failure is one failed animation of a document.
type Failure struct {
	Animation string `json:"animation"`
	Code      string `json:"code"`
	Error     string `json:"error"`
}

// Summarize counts the outcomes of one document's results.
func Summarize(document string, results []Result) ManifestEntry {
	e := ManifestEntry{Document: document}
	for _, r := range results {
		switch {
		case !r.Success:
			e.Failed++
			e.Failures = append(e.Failures, Failure{Animation: r.Animation, Code: string(r.Code), Error: r.Error})
		case r.Skipped:
			e.Skipped++
		default:
			e.Converted++
		}
	}
	return e
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path string, entries []ManifestEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
