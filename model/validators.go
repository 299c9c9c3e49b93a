package model

import "github.com/coalaip/go-coalaip/vocabulary"

// Validators for the built-in COALA IP entity kinds. Each is a pure
// predicate over candidate model data; higher-level validators delegate to
// lower-level ones and add constraints.

// IsCreation requires a non-empty string "name".
func IsCreation(data map[string]any) error {
	name, ok := data[vocabulary.KeyName].(string)
	if !ok || name == "" {
		return &DataError{Field: vocabulary.KeyName, Reason: "must be a non-empty string"}
	}
	return nil
}

// IsWork requires creation validity and forbids the manifestation markers:
// no "manifestationOfWork" key, and "isManifestation" must be false when
// present.
func IsWork(data map[string]any) error {
	if err := IsCreation(data); err != nil {
		return err
	}
	if _, ok := data[vocabulary.KeyManifestationOfWork]; ok {
		return &DataError{Field: vocabulary.KeyManifestationOfWork, Reason: "must not be given for a work"}
	}
	if flag, ok := data[vocabulary.KeyIsManifestation]; ok && flag != false {
		return &DataError{Field: vocabulary.KeyIsManifestation, Reason: "must be false if given for a work"}
	}
	return nil
}

// IsManifestation requires creation validity, a non-empty string
// "manifestationOfWork", and "isManifestation" to be true when present.
func IsManifestation(data map[string]any) error {
	if err := IsCreation(data); err != nil {
		return err
	}
	manifestationOf, ok := data[vocabulary.KeyManifestationOfWork].(string)
	if !ok || manifestationOf == "" {
		return &DataError{Field: vocabulary.KeyManifestationOfWork, Reason: "must be a non-empty string"}
	}
	if flag, ok := data[vocabulary.KeyIsManifestation]; ok && flag != true {
		return &DataError{Field: vocabulary.KeyIsManifestation, Reason: "must be true if given for a manifestation"}
	}
	return nil
}

// IsRight requires exactly one of "rightsOf" or "allowedBy" as a non-empty
// string: rightsOf for full rights to a Manifestation or Work, allowedBy
// for a right derived from a source Right.
func IsRight(data map[string]any) error {
	rightsOf, err := optionalString(data, vocabulary.KeyRightsOf)
	if err != nil {
		return err
	}
	allowedBy, err := optionalString(data, vocabulary.KeyAllowedBy)
	if err != nil {
		return err
	}
	if (rightsOf == "") == (allowedBy == "") {
		return &DataError{
			Field:  vocabulary.KeyRightsOf,
			Reason: "exactly one of \"rightsOf\" or \"allowedBy\" must be given",
		}
	}
	return nil
}

// IsCopyright requires right validity and forbids "allowedBy": a copyright
// always holds full rights, never derived ones.
func IsCopyright(data map[string]any) error {
	if err := IsRight(data); err != nil {
		return err
	}
	if _, ok := data[vocabulary.KeyAllowedBy]; ok {
		return &DataError{Field: vocabulary.KeyAllowedBy, Reason: "must not be given for a copyright"}
	}
	return nil
}

// optionalString reads a key that must be a string when present.
func optionalString(data map[string]any, key string) (string, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &DataError{Field: key, Reason: "must be given as a string"}
	}
	return s, nil
}
