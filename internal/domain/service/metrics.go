package service

// InventoryMetrics records operational counters of the inventory core.
type InventoryMetrics interface {
	ScanResolved(mode string)
	HistoryEntriesWritten(n int)
	HistoryWriteFailed(n int)
	AccessDenied(operation string)
	ViewOpened()
	ViewClosed()
}
