package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Connection is a directed "scanner met scanned" edge. A scan always
// writes both directions in one transaction, so the relation is
// symmetric by construction. Rows are immutable once created.
//
// The unique index on (scanner_id, scanned_id) is the only
// "already connected" signal: a violation on the forward edge means the
// pair was recorded before.
type Connection struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ScannerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_connections_scanner_scanned,priority:1" json:"scanner_id"`
	ScannedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_connections_scanner_scanned,priority:2;index" json:"scanned_id"`
	CreatedAt time.Time `json:"created_at"`
	Scanned   Profile   `gorm:"foreignKey:ScannedID" json:"-"`
}

func (c *Connection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
