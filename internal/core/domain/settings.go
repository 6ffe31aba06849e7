package domain

import "encoding/json"

// SettingsSection names a group of settings.
type SettingsSection string

const (
	SettingsEmail        SettingsSection = "email"
	SettingsSMS          SettingsSection = "sms"
	SettingsWhatsApp     SettingsSection = "whatsapp"
	SettingsCompany      SettingsSection = "company"
	SettingsSubscription SettingsSection = "subscription"
)

// IsValid reports whether s is a known section.
func (s SettingsSection) IsValid() bool {
	switch s {
	case SettingsEmail, SettingsSMS, SettingsWhatsApp, SettingsCompany, SettingsSubscription:
		return true
	}
	return false
}

// Settings is the stored value of one section.
type Settings struct {
	Section SettingsSection `json:"section"`
	Values  json.RawMessage `json:"values"`
	AuditFields
}
