package models

import "assetdesk/pkg/roles"

// Actor is the authenticated identity attributed to every mutation.
type Actor struct {
	ID   int        `json:"id"`
	Role roles.Role `json:"role"`
}
