package config

// SecretStringValue replaces secret values in marshaled output - exported for tests.
const SecretStringValue = "<secret>"

// SecretString holds configuration secrets, like the PDF document password,
// that must never surface in dumped configuration or logs.
type SecretString string

// MarshalJSON marshals SecretString to JSON making sure that actual value is not visible.
func (s SecretString) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return []byte("\"" + SecretStringValue + "\""), nil
}

// MarshalYAML marshals SecretString to YAML making sure that actual value is not visible.
func (s SecretString) MarshalYAML() (any, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return SecretStringValue, nil
}
