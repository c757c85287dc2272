package dto

type CreateUniversityInput struct {
	Name    string `json:"name" binding:"required"`
	Acronym string `json:"acronym" binding:"omitempty"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required,len=2"`
}
