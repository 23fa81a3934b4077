package enums

import "fmt"

// SettingCategory groups store settings for lookup.
type SettingCategory string

const (
	SettingCategoryStore     SettingCategory = "store"
	SettingCategoryBilling   SettingCategory = "billing"
	SettingCategoryInventory SettingCategory = "inventory"
)

var validSettingCategories = []SettingCategory{
	SettingCategoryStore,
	SettingCategoryBilling,
	SettingCategoryInventory,
}

// String implements fmt.Stringer.
func (s SettingCategory) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SettingCategory.
func (s SettingCategory) IsValid() bool {
	for _, candidate := range validSettingCategories {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSettingCategory converts raw input into a SettingCategory.
func ParseSettingCategory(value string) (SettingCategory, error) {
	for _, candidate := range validSettingCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid setting category %q", value)
}
