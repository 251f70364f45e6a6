package tally

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultBatchConcurrency is used when NewBatchExecutor gets a non-positive value.
const DefaultBatchConcurrency = 5

// Static errors for err113 compliance.
var (
	ErrBatchOperationFailed = errors.New("batch operation failed")
	ErrNilOperation         = errors.New("batch operation has nothing to run")
)

// BatchOperation is a single unit of work in a batch.
type BatchOperation struct {
	ID string
	// Type labels the operation, e.g. "get" or "void".
	Type     string
	Run      func(ctx context.Context) (interface{}, error)
	Callback func(result *BatchResult)
}

// BatchResult is the outcome of one BatchOperation.
type BatchResult struct {
	ID       string
	Type     string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// BatchExecutor runs operations concurrently with a bounded number in flight.
type BatchExecutor struct {
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	return &BatchExecutor{concurrency: concurrency}
}

// SetTimeout bounds each operation. Zero leaves only the per-call timeout of
// the client.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs every operation and returns the results in input order. It
// never stops early; inspect the results or use JoinBatchErrors.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) []BatchResult {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			result := b.executeOperation(ctx, operation)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results
}

func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{
		ID:   operation.ID,
		Type: operation.Type,
	}

	if operation.Run == nil {
		result.Error = fmt.Errorf("%w: %s", ErrNilOperation, operation.ID)

		return result
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	start := time.Now()
	result.Data, result.Error = operation.Run(ctx)
	result.Duration = time.Since(start)
	result.Success = result.Error == nil

	return result
}

// JoinBatchErrors returns nil when every result succeeded, or one error
// wrapping each failure.
func JoinBatchErrors(results []BatchResult) error {
	var errs []error

	for _, result := range results {
		if !result.Success {
			errs = append(errs, fmt.Errorf("%w: %s %s: %w", ErrBatchOperationFailed, result.Type, result.ID, result.Error))
		}
	}

	return errors.Join(errs...)
}

// BatchBuilder assembles operations against the resource clients.
type BatchBuilder struct {
	clients    ResourceClients
	operations []BatchOperation
}

// NewBatchBuilder creates a builder bound to clients.
func NewBatchBuilder(clients ResourceClients) *BatchBuilder {
	return &BatchBuilder{clients: clients}
}

// AddGetInvoice fetches an invoice.
func (b *BatchBuilder) AddGetInvoice(id string) *BatchBuilder {
	return b.add(id, "get", func(ctx context.Context) (interface{}, error) {
		return b.clients.Invoices().Get(ctx, id)
	})
}

// AddVoidInvoice voids an invoice.
func (b *BatchBuilder) AddVoidInvoice(id string) *BatchBuilder {
	return b.add(id, "void", func(ctx context.Context) (interface{}, error) {
		return b.clients.Invoices().Void(ctx, id)
	})
}

// AddDeleteInvoice deletes an invoice.
func (b *BatchBuilder) AddDeleteInvoice(id string) *BatchBuilder {
	return b.add(id, "delete", func(ctx context.Context) (interface{}, error) {
		return nil, b.clients.Invoices().Delete(ctx, id)
	})
}

// AddConvertEstimate converts an estimate into an invoice.
func (b *BatchBuilder) AddConvertEstimate(id string) *BatchBuilder {
	return b.add(id, "convert", func(ctx context.Context) (interface{}, error) {
		return b.clients.Estimates().Convert(ctx, id)
	})
}

// AddDeleteContact deletes a contact.
func (b *BatchBuilder) AddDeleteContact(id string) *BatchBuilder {
	return b.add(id, "delete", func(ctx context.Context) (interface{}, error) {
		return nil, b.clients.Contacts().Delete(ctx, id)
	})
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the assembled operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return append([]BatchOperation(nil), b.operations...)
}

func (b *BatchBuilder) add(id, kind string, run func(ctx context.Context) (interface{}, error)) *BatchBuilder {
	return b.AddOperation(BatchOperation{ID: id, Type: kind, Run: run})
}
