package models

import (
	"gorm.io/gorm"
)

// Fridge is a named inventory container owned by a user.
type Fridge struct {
	gorm.Model
	Name     string    `gorm:"size:50;not null" json:"fridge_name"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	Products []Product `gorm:"foreignKey:FridgeID;constraint:OnDelete:CASCADE" json:"products"`
}

// BeforeDelete removes the fridge's products along with it.
func (f *Fridge) BeforeDelete(tx *gorm.DB) error {
	if f.ID == 0 {
		return nil
	}
	return tx.Where("fridge_id = ?", f.ID).Delete(&Product{}).Error
}
