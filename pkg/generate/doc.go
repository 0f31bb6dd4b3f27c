// Package generate drives record production. A Generator validates a schema
// once, then draws each field through the value dispatcher in a fixed order:
// canonical (sorted) field order for map-form records and column batches,
// caller order for tuple-form records. Because every spec kind consumes a
// fixed sequence of draws, a seeded source reproduces output exactly.
//
// The chunked variants split a batch into sequential pieces and return
// control to the scheduler between pieces. Row-oriented chunked output is
// byte-identical to the synchronous form for any chunk size; column-oriented
// chunked output matches the synchronous form only when the batch fits one
// chunk. See ColumnsChunked for the reasoning.
package generate
