// Package models holds the persistent entities of the task tracker.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash with an
// embedded per-record salt; the raw password never reaches this struct.
type User struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}
