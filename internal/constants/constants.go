package constants

// ContextKeyUserID is the gin context key holding the authenticated user's ID.
const ContextKeyUserID = "user_id"

const (
	MinPasswordLength = 6
	MaxNameLength     = 255
	MaxPhoneLength    = 12
	MaxStatusLength   = 50
)

// DateFormat is the wire format for date fields (start_date, end_date, due_date).
const DateFormat = "2006-01-02"

const (
	// MaxAvatarSizeBytes caps avatar uploads at 2048 KB.
	MaxAvatarSizeBytes = 2048 * 1024

	// AvatarDir is the directory under the storage root where avatars live.
	AvatarDir = "avatars"
)

// TokenByteLength is the number of random bytes behind an access token
// (hex-encoded to twice this length on the wire).
const TokenByteLength = 20
