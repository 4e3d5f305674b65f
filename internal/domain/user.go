package domain

// User is an operator account for the rental office. Password-based
// accounts carry a bcrypt hash; Firebase-federated accounts carry the
// Firebase UID instead.
type User struct {
	ID           int32   `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"`
	FirebaseUID  *string `json:"firebase_uid,omitempty"`
	CreatedOn    string  `json:"created_on"`
}
