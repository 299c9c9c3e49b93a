// Package vocabulary defines the JSON-LD context IRIs, wire keys, and type
// labels shared by all COALA IP entity kinds.
package vocabulary

// ContextCoalaIP is the COALA IP JSON-LD context URL.
const ContextCoalaIP = "https://coalaip.org/"

// ContextSchema is the schema.org JSON-LD context URL, used by entity kinds
// that build on schema.org terms (Works and Manifestations).
const ContextSchema = "http://schema.org/"

// Linked-data metadata keys carried by the jsonld wire format.
const (
	// KeyType is the JSON-LD type key.
	KeyType = "@type"

	// KeyContext is the JSON-LD context key.
	KeyContext = "@context"

	// KeyID is the JSON-LD identifier key. An empty value refers to the
	// current document.
	KeyID = "@id"
)

// KeyPlainType is the type key used by the plain json wire format.
const KeyPlainType = "type"

// Domain property keys appearing inside entity data.
const (
	// KeyName is the human-readable name of a creation.
	KeyName = "name"

	// KeyManifestationOfWork links a Manifestation to its backing Work.
	KeyManifestationOfWork = "manifestationOfWork"

	// KeyIsManifestation flags a record as a Manifestation.
	KeyIsManifestation = "isManifestation"

	// KeyRightsOf links a Right to the Manifestation or Work it holds full
	// rights over.
	KeyRightsOf = "rightsOf"

	// KeyAllowedBy links a derived Right to the source Right allowing it.
	KeyAllowedBy = "allowedBy"
)

// Type labels for the built-in entity kinds.
const (
	// TypeWork is the fixed @type of Work entities.
	TypeWork = "AbstractWork"

	// TypeManifestation is the default @type of Manifestation entities.
	TypeManifestation = "CreativeWork"

	// TypeRight is the default @type of Right entities.
	TypeRight = "Right"

	// TypeCopyright is the fixed @type of Copyright entities.
	TypeCopyright = "Copyright"

	// TypeRightsAssignment is the fixed @type of RightsAssignment entities.
	TypeRightsAssignment = "RightsTransferAction"
)

// DefaultContext returns the default JSON-LD context sequence: the COALA IP
// vocabulary followed by schema.org.
func DefaultContext() []any {
	return []any{ContextCoalaIP, ContextSchema}
}

// DomainContext returns the COALA-IP-only context sequence used by entity
// kinds that do not depend on schema.org.
func DomainContext() []any {
	return []any{ContextCoalaIP}
}
