package models

const (
	// AccountFallbackName is the display name given to accounts that were
	// provisioned implicitly, before the owner ever set a profile.
	AccountFallbackName = "Utilizador"
	// AccountUnknownName is shown when a referenced account row is missing.
	AccountUnknownName = "Desconhecido"
)

// User is an account as seen by the feed. Identifiers are opaque strings
// supplied by the client, not generated here; rows appear lazily the first
// time anything references them and are never deleted.
type User struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	Username string  `json:"username"`
	Nick     string  `json:"apelido"`
	Avatar   *string `json:"foto"`
}
