package constants

// Redis key formats
const (
	KeySmsCount  = "verification:sms:count:%s" // Format: verification:sms:count:{admin_id}
	KeyRateLimit = "rate:ip"                   // Prefix for per-ip OTP request windows
)

// Mongo collections
const (
	CollectionVerification = "verification"
	CollectionForms        = "forms"
)
