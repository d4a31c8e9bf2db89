package model

import "time"

// MediaOrphan is a remote object that has to be removed from the object
// store but has not been yet.
type MediaOrphan struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Bucket    string    `gorm:"size:64;not null;uniqueIndex:idx_orphan_object,priority:1" json:"bucket"`
	ObjectKey string    `gorm:"size:255;not null;uniqueIndex:idx_orphan_object,priority:2" json:"objectKey"`
	Reason    string    `gorm:"size:64;not null" json:"reason"`
	Attempts  int       `gorm:"not null;index" json:"attempts"`
	LastError string    `gorm:"type:text" json:"lastError"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Models lists every table this service migrates.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Video{},
		&Comment{},
		&Like{},
		&Subscription{},
		&MediaOrphan{},
	}
}
