package domain

type PersonId = int64

// Person is someone who can punch cards. Email and PhoneNumber are nil when
// not supplied and are omitted from JSON in that case.
type Person struct {
	Id          PersonId `json:"id"`
	Name        string   `json:"name"`
	Email       *string  `json:"email,omitempty"`
	PhoneNumber *string  `json:"phone_number,omitempty"`
}

type PersonCreationData struct {
	Name        string
	Email       *string
	PhoneNumber *string
}
