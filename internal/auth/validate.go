// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

package auth

import "regexp"

// nameRegex matches full names made of letters, spaces, and ,.'- only.
var nameRegex = regexp.MustCompile(`(?i)^[a-z ,.'-]+$`)

// emailRegex matches the usual local@domain.tld shape with a 2-4 letter TLD.
var emailRegex = regexp.MustCompile(`^([a-zA-Z0-9_.+-])+@(([a-zA-Z0-9-])+\.)+([a-zA-Z0-9]{2,4})+$`)

// ValidName reports whether the full name satisfies the name-shape contract.
func ValidName(name string) bool {
	return nameRegex.MatchString(name)
}

// ValidEmail reports whether the address satisfies the email-shape contract.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
