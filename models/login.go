package models

// Login carries the credential pair for every role: email for doctors and
// patients, username for admins.
type Login struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
