package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Supplier holds one active contact channel: email (one or more addresses,
// comma separated) or phone, discriminated by ContactMethod.
type Supplier struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	RestaurantID      uint           `json:"restaurant_id" gorm:"index;not null"`
	Name              string         `json:"name" gorm:"not null"`
	DeliversMonday    bool           `json:"delivers_monday" gorm:"default:false"`
	DeliversTuesday   bool           `json:"delivers_tuesday" gorm:"default:false"`
	DeliversWednesday bool           `json:"delivers_wednesday" gorm:"default:false"`
	DeliversThursday  bool           `json:"delivers_thursday" gorm:"default:false"`
	DeliversFriday    bool           `json:"delivers_friday" gorm:"default:false"`
	DeliversSaturday  bool           `json:"delivers_saturday" gorm:"default:false"`
	DeliversSunday    bool           `json:"delivers_sunday" gorm:"default:false"`
	LeadTimeDays      int            `json:"lead_time_days" gorm:"default:0"`
	ContactMethod     string         `json:"contact_method"` // email, phone
	Emails            string         `json:"emails" gorm:"type:text"`
	Phone             string         `json:"phone"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type ContactMethod string

const (
	ContactEmail ContactMethod = "email"
	ContactPhone ContactMethod = "phone"
)

// EmailList splits the stored address list, dropping empty entries.
func (s *Supplier) EmailList() []string {
	var out []string
	for _, addr := range strings.Split(s.Emails, ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
