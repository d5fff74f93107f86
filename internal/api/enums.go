package api

// Enumerated parameter values accepted by the API. Each set is closed;
// anything outside it fails validation before a request is built.

// OS identifies the platform segment of an endpoint path. "unified" is the
// virtual platform meaning iOS and Android combined.
type OS string

const (
	OSiOS     OS = "ios"
	OSAndroid OS = "android"
	OSUnified OS = "unified"
)

// AllowedOS lists valid os values in documented order.
var AllowedOS = []string{"ios", "android", "unified"}

// ValidateOS checks an os value against the allowed set.
func ValidateOS(value string) (OS, error) {
	if err := validateEnum("os", value, AllowedOS); err != nil {
		return "", err
	}
	return OS(value), nil
}

// AllowedDateGranularity lists valid date_granularity values.
var AllowedDateGranularity = []string{"daily", "weekly", "monthly", "quarterly"}

// AllowedComparisonAttribute lists valid comparison_attribute values.
var AllowedComparisonAttribute = []string{"absolute", "delta", "transformed_delta"}

// AllowedTimeRange lists valid time_range values for top charts.
var AllowedTimeRange = []string{"day", "week", "month", "quarter", "year"}

// AllowedUserMeasure lists valid measure values for active-user charts.
var AllowedUserMeasure = []string{"DAU", "WAU", "MAU"}

// AllowedSalesMeasure lists valid measure values for sales-based charts.
var AllowedSalesMeasure = []string{"units", "revenue"}

// AllowedDeviceType lists valid device_type values across platforms.
var AllowedDeviceType = []string{"iphone", "ipad", "total", "total_unified"}

// WorldwideCode is the reserved country/region value meaning no geographic
// filter. The API treats a missing parameter the same way, so requests
// omit it rather than sending it literally.
const WorldwideCode = "WW"

func validateEnum(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &InvalidArgumentError{
		Field:      field,
		Value:      value,
		Allowed:    allowed,
		Suggestion: suggest(value, allowed),
	}
}

// defaultDeviceType returns the platform-appropriate device_type when the
// caller gave none: iOS aggregates as "total", unified as "total_unified",
// and Android has no device breakdown so the parameter stays absent.
func defaultDeviceType(os OS) string {
	switch os {
	case OSiOS:
		return "total"
	case OSUnified:
		return "total_unified"
	default:
		return ""
	}
}
