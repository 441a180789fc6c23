package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"dae-track-converter/internal/anim"
	"dae-track-converter/internal/batch"
	"dae-track-converter/internal/collada"
	"dae-track-converter/internal/config"
	"dae-track-converter/internal/diag"
	"dae-track-converter/internal/preview"
	"dae-track-converter/internal/trackfile"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	testN := flag.Int("test", 0, "Convert only first N documents for testing")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	inputDir := flag.String("input", "", "Directory searched for .dae documents (default: .)")
	outputDir := flag.String("output", "", "Output directory (default: <input>/tracks)")
	withPreview := flag.Bool("preview", false, "Write a curve preview image per track")
	previewFormat := flag.String("preview-format", "", "Preview format: webp or tga (default: webp)")
	logLevel := flag.String("log", "", "Log level: debug, info, warn, error (default: info)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:      *inputDir,
		OutputDir:     *outputDir,
		Workers:       *workers,
		Preview:       *withPreview,
		PreviewFormat: *previewFormat,
		LogLevel:      *logLevel,
	})
	diag.SetLogger(diag.NewLogger(os.Stderr, cfg.LogLevel))

	docs, err := findDocuments(cfg.InputDir, cfg.OutputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", cfg.InputDir, err)
		os.Exit(1)
	}

	// Limit for testing
	if *testN > 0 && *testN < len(docs) {
		docs = docs[:*testN]
	}

	if len(docs) == 0 {
		fmt.Println("No documents to convert.")
		os.Exit(0)
	}

	fmt.Printf("COLLADA animations → track groups\n")
	fmt.Printf("Documents: %d, Workers: %d\n", len(docs), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	entries := make([]batch.ManifestEntry, 0, len(docs))
	converted, failed := 0, 0
	for _, rel := range docs {
		e := convertDocument(cfg, rel)
		converted += e.Converted
		failed += e.Failed
		if e.Error != "" {
			failed++
		}
		entries = append(entries, e)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())
	fmt.Printf("Tracks: %d, Failed: %d\n", converted, failed)

	if failed > 0 {
		fmt.Printf("\nFailed:\n")
		shown := 0
		for _, e := range entries {
			if e.Error != "" && shown < 20 {
				fmt.Printf("  %s: %s\n", e.Document, e.Error)
				shown++
			}
			for _, f := range e.Failures {
				if shown >= 20 {
					break
				}
				fmt.Printf("  %s#%s: [%s] %s\n", e.Document, f.Animation, f.Code, f.Error)
				shown++
			}
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, entries); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// findDocuments lists .dae files under dir relative to it, skipping the output tree.
func findDocuments(dir, outputDir string) ([]string, error) {
	var docs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && path == outputDir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".dae") {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			docs = append(docs, rel)
		}
		return nil
	})
	sort.Strings(docs)
	return docs, err
}

func convertDocument(cfg config.Config, rel string) batch.ManifestEntry {
	log := diag.Logger().With("document", rel)
	entry := batch.ManifestEntry{Document: rel}

	doc, err := collada.Parse(filepath.Join(cfg.InputDir, rel))
	if err != nil {
		log.Error("parse failed", "code", diag.Classify(err), "err", err)
		entry.Error = err.Error()
		return entry
	}
	bones, err := doc.Skeleton()
	if err != nil {
		log.Error("skeleton failed", "err", err)
		entry.Error = err.Error()
		return entry
	}

	anims := doc.Animations()
	log.Info("converting", "animations", len(anims), "bones", bones.Len())
	results := batch.Run(batch.Config{Workers: cfg.Workers}, bones, anims)

	summary := batch.Summarize(rel, results)

	base := strings.TrimSuffix(rel, filepath.Ext(rel))
	group := batch.Group(filepath.Base(base), results, cfg.TimeStep)
	if len(group.Tracks) == 0 {
		return summary
	}

	trackPath := base + ".tracks.json"
	if err := trackfile.Write(filepath.Join(cfg.OutputDir, trackPath), group); err != nil {
		log.Error("track file write failed", "err", err)
		summary.Error = err.Error()
		return summary
	}
	summary.TrackFile = filepath.ToSlash(trackPath)

	if cfg.Preview {
		summary.Previews = writePreviews(cfg, base, results)
	}
	return summary
}

func writePreviews(cfg config.Config, base string, results []batch.Result) []string {
	var paths []string
	opts := preview.Options{Width: cfg.PreviewWidth, Height: cfg.PreviewHeight, Supersample: cfg.Supersample}
	for _, r := range results {
		if r.Track == nil {
			continue
		}
		rel := filepath.Join(base, fileSafe(r.Animation)+"."+cfg.PreviewFormat)
		if err := writePreview(filepath.Join(cfg.OutputDir, rel), r.Track, opts, cfg.PreviewFormat); err != nil {
			diag.Logger().Warn("preview failed", "animation", r.Animation, "err", err)
			continue
		}
		paths = append(paths, filepath.ToSlash(rel))
	}
	return paths
}

func writePreview(path string, t *anim.Track, opts preview.Options, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return preview.Encode(f, preview.Render(t, opts), format)
}

var unsafeChars = strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")

func fileSafe(s string) string {
	return unsafeChars.Replace(s)
}
