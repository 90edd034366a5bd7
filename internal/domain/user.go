package domain

// User is a registered driver. DisplayName is the attribution key used on
// payment records; Username identifies the login handled by the auth layer.
type User struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}
