package entity

import "time"

// University is a catalog record; the ID is assigned by the document store.
type University struct {
	ID        string    `firestore:"id" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Acronym   string    `firestore:"acronym,omitempty" json:"acronym,omitempty"`
	City      string    `firestore:"city" json:"city"`
	State     string    `firestore:"state" json:"state"`
	Active    bool      `firestore:"active" json:"active"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
