package user

// Request carries the user payload for create and update. The capitalised
// JSON key is part of the published contract.
type Request struct {
	Username string `json:"Username"`
}
