package domain

// Operator roles resolved by the identity provider and passed in request headers
const (
	RoleManager   = "manager"
	RoleAdmin     = "admin"
	RoleSuperuser = "superuser"
)

// Camera registry limits per yard
const (
	MaxCamerasPerYard = 2
)

// Time format constants
const (
	DateTimeFormat = "2006-01-02 15:04:05"
	BoxNameFormat  = "02/01/2006 15:04:05" // dd/mm/yyyy, used in register box names
)

// Business validation constants
const (
	MaxPlateLength       = 8
	MaxCommentLength     = 500
	MaxObservationLength = 1000
	SlotCodePadding      = 2 // slot codes are zero-padded to two digits
)
