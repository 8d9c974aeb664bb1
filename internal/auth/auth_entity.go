package auth

// Account is a login identity. The tracker ships a single demo account whose
// credentials come from configuration.
type Account struct {
	Username     string
	PasswordHash string
}
