package roles

// Role is an enumeration for token access roles.
type Role int

// Various token access roles.
const (
	_ Role = iota

	// Admin stands for accounts that manage the pause gate and
	// role membership.
	Admin

	// Minter stands for accounts that are allowed to issue new
	// tokens.
	Minter
)
