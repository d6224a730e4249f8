// Package models defines the persistent entities of status-villain.
package models

import "time"

// Account is a registered local user profile. Email is the business key and
// is unique across accounts. Password holds the opaque stored form produced
// by the passwordx package, never the plaintext.
type Account struct {
	ID        string
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	CreatedAt time.Time
}
