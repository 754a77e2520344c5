package models

// Setting keys configurable by admins. Values are stored as strings and parsed
// into decimals at pricing time.
const (
	SettingBuyerTaxPercentage      = "buyer_tax_percentage"
	SettingSellerTaxPercentage     = "seller_tax_percentage"
	SettingDeliveryCharge          = "delivery_charge"
	SettingDriverCommissionFixed   = "driver_commission_fixed"
	SettingDriverCommissionPercent = "driver_commission_percentage" // legacy, unused by pricing
)

// Setting is a flat key/value economic parameter.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey;type:varchar(64)"`
	Value string `json:"value" gorm:"type:varchar(64)"`
}
