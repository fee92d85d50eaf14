package dto

// UpdateSettingsInput carries only the fields being changed.
type UpdateSettingsInput struct {
	FullName *string
	Email    *string
	Phone    *string
	Company  *string

	CompactMode *bool
	Language    *string

	EmailNotifications *bool
	SMSNotifications   *bool
	PushNotifications  *bool

	TwoFactor  *bool
	AutoLogout *bool
}
