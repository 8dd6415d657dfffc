package database

import "context"

// BlobTableSQL holds one opaque value per key. The cart is stored as a single
// row whose value is the whole JSON-encoded cart.
const BlobTableSQL = `
CREATE TABLE IF NOT EXISTS app_blobs (
    blob_key VARCHAR(191) PRIMARY KEY,
    value LONGBLOB NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// SetupSchema creates the tables used by the storage backend
func (db *DB) SetupSchema(ctx context.Context) error {
	_, err := db.ExecContext(ctx, BlobTableSQL)
	return err
}

// DropSchema removes the storage tables
func (db *DB) DropSchema(ctx context.Context) error {
	_, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS app_blobs")
	return err
}
