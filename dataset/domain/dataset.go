package dataset

import "strings"

// RecordIDField is the reserved record field carrying the document ID.
const RecordIDField = "id"

// Descriptor is the registry entry of a provisioned dataset. The document ID
// is the normalized dataset name; rowCount is mutated only through atomic
// increments.
type Descriptor struct {
	Name         string `firestore:"apiName"`
	Public       bool   `firestore:"public"`
	APIKey       string `firestore:"apiKey"`
	APISecretKey string `firestore:"apiSecretKey"`
	RowCount     int64  `firestore:"rowCount"`
}

// Record is one row of a dataset. The field set is defined by the caller;
// the service only reserves the "id" field for addressing.
type Record map[string]interface{}

// ID returns the reserved id field, or an empty string when the record was
// never persisted.
func (r Record) ID() string {
	if id, ok := r[RecordIDField].(string); ok {
		return id
	}

	return ""
}

// Fields returns a copy of the record without the reserved id field,
// suitable for persisting.
func (r Record) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, len(r))

	for k, v := range r {
		if k == RecordIDField {
			continue
		}

		fields[k] = v
	}

	return fields
}

// CredentialCacheEntry is the denormalized access-control projection of a
// Descriptor, kept in the credentials cache under "api-<name>".
type CredentialCacheEntry struct {
	Public       bool
	APIKey       string
	APISecretKey string
}

// AccessDecision is the outcome of authorizing a request against a dataset.
type AccessDecision int

// The zero value is a deny so that a forgotten assignment can never grant
// access.
const (
	AccessDeniedUnknownDataset AccessDecision = iota
	AccessDeniedForbidden
	AccessAllowed
)

// NormalizeName lowercases a dataset name. Every lookup key (registry doc ID,
// cache key, records collection) is derived from the normalized form so that
// "Widgets" and "widgets" address the same dataset.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
