package model

import "time"

// Metadata is the audit trail every table carries. The timestamps are filled by
// column defaults on insert and by the update helpers afterwards.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  readonly:"true"`
	CreatedBy  string    `db:"created_by"`
	ModifiedAt time.Time `db:"modified_at" readonly:"true"`
	ModifiedBy string    `db:"modified_by"`
}
