// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// IDList is a list of uuids stored as a native uuid[] on Postgres and as
// array text elsewhere. Encoding is delegated to pq.StringArray.
type IDList []string

// GormDBDataType picks the column type for the active dialect.
func (IDList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "uuid[]"
	}
	return "text"
}

// Value implements driver.Valuer.
func (l IDList) Value() (driver.Value, error) {
	return pq.StringArray(l).Value()
}

// Scan implements sql.Scanner.
func (l *IDList) Scan(src any) error {
	return (*pq.StringArray)(l).Scan(src)
}

// IDListFrom converts uuids into an IDList.
func IDListFrom(ids []uuid.UUID) IDList {
	out := make(IDList, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// UUIDs parses the list, skipping malformed entries.
func (l IDList) UUIDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(l))
	for _, s := range l {
		if id, err := uuid.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}
