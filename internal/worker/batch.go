package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/candorlabs/candor/internal/pipeline"
)

// Auditor analyzes a single input (URL or file path)
type Auditor interface {
	AnalyzeInput(ctx context.Context, input string) (*pipeline.Result, error)
}

// AuditJob analyzes one input, pacing URL fetches through the shared
// per-host limiter. Local file inputs skip the limiter.
type AuditJob struct {
	Input   string
	Auditor Auditor
	Limiter *Limiter
}

// Execute runs the job
func (j *AuditJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil && isURL(j.Input) {
		if err := j.Limiter.Wait(ctx, j.Input); err != nil {
			return &AuditJobResult{Input: j.Input, Error: err}
		}
	}

	result, err := j.Auditor.AnalyzeInput(ctx, j.Input)
	if err != nil {
		return &AuditJobResult{Input: j.Input, Error: err}
	}
	return &AuditJobResult{Input: j.Input, Result: result}
}

// AuditJobResult is the outcome of a single batch input
type AuditJobResult struct {
	Input  string
	Result *pipeline.Result
	Error  error
}

// GetError returns the job error, if any
func (r *AuditJobResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many inputs concurrently
type BatchProcessor struct {
	auditor     Auditor
	limiter     *Limiter
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(auditor Auditor, limiter *Limiter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		auditor:     auditor,
		limiter:     limiter,
		concurrency: concurrency,
	}
}

// Process analyzes the inputs concurrently and returns one result per
// input. Canceling ctx abandons inputs not yet started; results for
// finished inputs are still returned. Result order follows completion,
// not submission.
func (b *BatchProcessor) Process(ctx context.Context, inputs []string) []*AuditJobResult {
	if len(inputs) == 0 {
		return []*AuditJobResult{}
	}

	jobs := make([]Job, len(inputs))
	for i, input := range inputs {
		jobs[i] = &AuditJob{
			Input:   input,
			Auditor: b.auditor,
			Limiter: b.limiter,
		}
	}

	results := NewPool(b.concurrency).Run(ctx, jobs)

	jobResults := make([]*AuditJobResult, len(results))
	for i, result := range results {
		jobResults[i] = result.(*AuditJobResult)
	}
	return jobResults
}

// ProcessFile reads inputs from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AuditJobResult, error) {
	inputs, err := ReadInputsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}
	return b.Process(ctx, inputs), nil
}

// ReadInputsFromFile reads inputs from a file, one per line. Blank
// lines and lines starting with # are skipped; duplicates keep their
// first occurrence.
func ReadInputsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			inputs = append(inputs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return inputs, nil
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
