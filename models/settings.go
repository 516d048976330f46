package models

// Currencies labels the platform currency.
type Currencies struct {
	Main   string `json:"main" bson:"main" validate:"required"`
	Symbol string `json:"symbol" bson:"symbol" validate:"required"`
}

// Settings is the single platform-wide configuration record.
type Settings struct {
	PlatformFee              float64    `json:"platformFee" bson:"platformFee" validate:"gte=0,lte=1"`
	MinWithdrawal            float64    `json:"minWithdrawal" bson:"minWithdrawal" validate:"gte=0"`
	SessionCancellationHours int        `json:"sessionCancellationHours" bson:"sessionCancellationHours" validate:"gte=0"`
	Currencies               Currencies `json:"currencies" bson:"currencies"`
	SupportEmail             string     `json:"supportEmail,omitempty" bson:"supportEmail,omitempty" validate:"omitempty,email"`
	SupportPhone             string     `json:"supportPhone,omitempty" bson:"supportPhone,omitempty"`
}

// DefaultSettings is used when no settings record has been stored yet.
func DefaultSettings() Settings {
	return Settings{
		PlatformFee:              0.15,
		MinWithdrawal:            100,
		SessionCancellationHours: 24,
		Currencies:               Currencies{Main: "EGP", Symbol: "ج.م"},
	}
}
