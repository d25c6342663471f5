package store

import "time"

// AddressRecord is the persisted metadata for a provisioned address.
//
// Address is the primary key: saving a record whose address already
// exists updates that record in place. CredentialSecret is stored in
// cleartext; the store file is written with 0600 permissions but no
// at-rest encryption is applied. AuthToken is the last token seen at
// provisioning time and is advisory only: tokens are short-lived and
// reads re-authenticate with the credential instead.
type AddressRecord struct {
	Address          string    `json:"address"`
	ProviderID       string    `json:"providerId"`
	CredentialSecret string    `json:"credentialSecret"`
	AuthToken        string    `json:"authToken"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

// Expired reports whether the record is expired at the given instant.
// A record whose ExpiresAt equals now is already expired: now must be
// strictly before the expiry to count as active.
func (r AddressRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
