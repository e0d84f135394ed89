package model

import "rozvoz/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldRestaurantID = "restaurant_id"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldLevel        = "level"
	FieldFullName     = "full_name"
	FieldLastLogin    = "last_login"
	FieldActive       = "active"
)

// User is a dispatcher or admin account. Every user is bound to exactly one
// restaurant, which scopes everything they can see.
type User struct {
	ID           string  `db:"id"`
	RestaurantID string  `db:"restaurant_id"`
	Email        string  `db:"email"`
	Password     string  `db:"password"`
	Level        string  `db:"level"`
	FullName     *string `db:"full_name"`
	LastLogin    *string `db:"last_login"`
	Active       bool    `db:"active"`
	model.Metadata
}
