package types

// ItemID identifies a catalog item. It is derived from the item's title.
type ItemID string

// String returns the string form of the item identifier.
func (id ItemID) String() string { return string(id) }

// Fingerprint is a short identifier for an enrolled credential presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// CredentialID uniquely identifies an enrolled credential.
type CredentialID string

// String returns the string form of the credential identifier.
func (id CredentialID) String() string { return string(id) }
