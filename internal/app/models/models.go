// Package models defines the persisted entities of the seva portal.
package models

// FeeLevel is the administrative tier a student registers under.
type FeeLevel string

const (
	FeeLevelVillage  FeeLevel = "village"
	FeeLevelBlock    FeeLevel = "block"
	FeeLevelDistrict FeeLevel = "district"
	FeeLevelHaryana  FeeLevel = "haryana"
)

// feeAmounts maps each level to its registration fee in rupees.
var feeAmounts = map[FeeLevel]int{
	FeeLevelVillage:  99,
	FeeLevelBlock:    199,
	FeeLevelDistrict: 299,
	FeeLevelHaryana:  399,
}

// Valid reports whether the fee level is one of the known tiers.
func (l FeeLevel) Valid() bool {
	_, ok := feeAmounts[l]
	return ok
}

// FeeAmountFor returns the fee for a level, defaulting to the village fee
// for unknown levels.
func FeeAmountFor(level FeeLevel) int {
	if amount, ok := feeAmounts[level]; ok {
		return amount
	}
	return feeAmounts[FeeLevelVillage]
}

// PaymentStatus is the membership card payment lifecycle. Approved is
// terminal.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentApproved PaymentStatus = "approved"
)

// ApplicationStatus is the volunteer application decision state.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// InquiryStatus tracks contact inquiry handling.
type InquiryStatus string

const (
	InquiryPending InquiryStatus = "pending"
	InquiryRead    InquiryStatus = "read"
	InquiryReplied InquiryStatus = "replied"
)

// SectionKey identifies a public content section of the site.
type SectionKey string

const (
	SectionAbout     SectionKey = "about"
	SectionServices  SectionKey = "services"
	SectionGallery   SectionKey = "gallery"
	SectionEvents    SectionKey = "events"
	SectionJoinUs    SectionKey = "joinUs"
	SectionContact   SectionKey = "contact"
	SectionVolunteer SectionKey = "volunteer"
)

// PaymentConfigType distinguishes the payment channels shown publicly.
type PaymentConfigType string

const (
	PaymentConfigDonation   PaymentConfigType = "donation"
	PaymentConfigFee        PaymentConfigType = "fee"
	PaymentConfigMembership PaymentConfigType = "membership"
	PaymentConfigGeneral    PaymentConfigType = "general"
)

// SettingType is the value type of an admin setting.
type SettingType string

const (
	SettingBoolean SettingType = "boolean"
	SettingString  SettingType = "string"
	SettingNumber  SettingType = "number"
	SettingJSON    SettingType = "json"
)
