package api

import (
	"time"

	"gorm.io/gorm"
)

type LeaderLease struct {
	Meta
	Leader    string
	LeaseType string
	Expires   *time.Time
}

type LeaderLeaseList []*LeaderLease
type LeaderLeaseIndex map[string]*LeaderLease

func (l LeaderLeaseList) Index() LeaderLeaseIndex {
	index := LeaderLeaseIndex{}
	for _, o := range l {
		index[o.ID] = o
	}
	return index
}

func (lease *LeaderLease) BeforeCreate(tx *gorm.DB) error {
	if lease.ID == "" {
		lease.ID = NewID()
	}
	return nil
}
