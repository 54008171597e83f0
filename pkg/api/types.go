package api

import (
	"time"

	"github.com/rs/xid"
	"gorm.io/gorm"
)

// Meta is the base model for all persisted API resources.
type Meta struct {
	ID        string `json:"id" gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	// needed for soft delete. See https://gorm.io/docs/delete.html#Soft-Delete
	DeletedAt gorm.DeletedAt
}

// NewID returns a new unique id suitable for use as a database primary key.
func NewID() string {
	return xid.New().String()
}

// PagingMeta carries the paging information of a list response.
type PagingMeta struct {
	Page  int
	Size  int
	Total int
}
