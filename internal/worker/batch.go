package worker

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/prooflab/proofdoc/internal/model"
)

// Checker defines the interface for checking one document
type Checker interface {
	CheckDocument(ctx context.Context, location string) (*model.Report, error)
}

// CheckJob checks one document location
type CheckJob struct {
	Location string
	Checker  Checker
}

// Execute runs the check
func (j *CheckJob) Execute(ctx context.Context) Result {
	report, err := j.Checker.CheckDocument(ctx, j.Location)
	return &CheckResult{
		Location: j.Location,
		Report:   report,
		Error:    err,
	}
}

// CheckResult is the outcome of one document check. Error covers I/O
// failures; decode failures live inside the report.
type CheckResult struct {
	Location string
	Report   *model.Report
	Error    error
}

// GetError returns the I/O error, if any
func (r *CheckResult) GetError() error {
	return r.Error
}

// BatchProcessor checks multiple documents concurrently
type BatchProcessor struct {
	checker     Checker
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(checker Checker, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		checker:     checker,
		concurrency: concurrency,
	}
}

// ProcessLocations checks the given document locations concurrently
func (b *BatchProcessor) ProcessLocations(ctx context.Context, locations []string) []*CheckResult {
	if len(locations) == 0 {
		return []*CheckResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, location := range locations {
		pool.Submit(&CheckJob{Location: location, Checker: b.checker})
	}

	results := pool.Wait()

	checkResults := make([]*CheckResult, len(results))
	for i, result := range results {
		checkResults[i] = result.(*CheckResult)
	}
	return checkResults
}

// documentSuffixes are the file extensions treated as proof documents
var documentSuffixes = []string{".proof.yaml", ".proof.yml"}

// CollectLocations resolves a batch input: a directory is walked for proof
// documents, any other path is read as a list file (one location per line,
// # comments and blank lines skipped, duplicates dropped).
func CollectLocations(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.IsDir() {
		return findDocuments(path)
	}
	return readLocationsFromFile(path)
}

func findDocuments(dir string) ([]string, error) {
	var locations []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, suffix := range documentSuffixes {
			if strings.HasSuffix(path, suffix) {
				locations = append(locations, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(locations)
	return locations, nil
}

func readLocationsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var locations []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			locations = append(locations, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return locations, nil
}
