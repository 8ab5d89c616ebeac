package models

import "time"

// Worker is a community health worker (ASHA). Both AshaID and Mobile are
// unique keys; Mobile is stored in digits-only canonical form. Password holds
// a bcrypt hash, never plaintext.
type Worker struct {
	ID        string     `json:"-" bson:"_id,omitempty"`
	Name      string     `json:"name" bson:"name"`
	AshaID    string     `json:"asha_id" bson:"asha_id"`
	Mobile    string     `json:"mobile" bson:"mobile"`
	Education string     `json:"education" bson:"education"`
	Years     int        `json:"years" bson:"years"`
	Village   string     `json:"village" bson:"village"`
	Password  string     `json:"-" bson:"password"`
	Photo     string     `json:"photo" bson:"photo"`
	Created   time.Time  `json:"created" bson:"created"`
	Updated   *time.Time `json:"updated,omitempty" bson:"updated,omitempty"`
}
