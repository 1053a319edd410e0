package version

import "context"

// Repository là contract cho version ledger. Append-only:
// Record không bao giờ ghi đè, History/Get chỉ đọc.
type Repository interface {
	// Record append một snapshot. Chỉ fail khi storage unavailable.
	Record(ctx context.Context, s Snapshot) error

	// History trả về snapshots của (contentType, contentID),
	// newest-first, cap tại HistoryLimit.
	History(ctx context.Context, contentType, contentID string) ([]Snapshot, error)

	// Get fetch một snapshot theo version_id, kèm check
	// contentType/contentID khớp. ErrNotFound nếu không match.
	Get(ctx context.Context, versionID, contentType, contentID string) (*Snapshot, error)
}
