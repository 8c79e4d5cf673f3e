// Package batch processes slices in fixed-size batches, sequentially or
// with bounded concurrency, reporting progress after each batch.
//
// The engine uses it to calculate many activity records without holding
// more than a batch of intermediate state per worker.
package batch
