package dto

import "anoa.com/scholarshipapi/internal/entity"

// ProfileInput is the full six-step profile payload. Field-level rules live
// in the entity binding tags; cross-field rules are checked by the service.
type ProfileInput struct {
	PersonalData entity.PersonalData    `json:"personalData" binding:"required"`
	Address      entity.AddressData     `json:"address" binding:"required"`
	FamilyData   entity.FamilyData      `json:"familyData" binding:"required"`
	AcademicData entity.AcademicData    `json:"academicData" binding:"required"`
	Scholarship  entity.ScholarshipData `json:"scholarship" binding:"required"`
	Documents    entity.DocumentsData   `json:"documents" binding:"required"`
}
