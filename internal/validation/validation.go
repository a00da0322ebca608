// Package validation checks user input before it reaches the API.
package validation

import (
	"errors"
	"fmt"
)

// SecretName validates a proposed secret name against Secret Manager rules:
// 1-255 characters, starting with an ASCII letter, containing only ASCII
// letters, digits, underscores, and hyphens, and not ending with a hyphen.
func SecretName(name string) error {
	if name == "" {
		return errors.New("secret name cannot be empty")
	}

	if len(name) > 255 {
		return errors.New("secret name must be 255 characters or less")
	}

	first := name[0]
	if !isASCIILetter(first) {
		return errors.New("secret name must start with a letter")
	}

	for _, c := range []byte(name) {
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '_' && c != '-' {
			return fmt.Errorf("secret name can only contain letters, digits, underscores, and hyphens, found %q", c)
		}
	}

	if name[len(name)-1] == '-' {
		return errors.New("secret name cannot end with a hyphen")
	}

	return nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
