package entity

import "time"

type MaritalStatus string

const (
	MaritalSingle  MaritalStatus = "single"
	MaritalMarried MaritalStatus = "married"
)

type ResidenceType string

const (
	ResidenceOwned  ResidenceType = "owned"
	ResidenceRented ResidenceType = "rented"
)

type ScholarshipType string

const (
	ScholarshipProuni        ScholarshipType = "prouni"
	ScholarshipFies          ScholarshipType = "fies"
	ScholarshipInstitutional ScholarshipType = "institutional"
	ScholarshipOther         ScholarshipType = "other"
)

type CoursePeriod string

const (
	PeriodMorning   CoursePeriod = "morning"
	PeriodAfternoon CoursePeriod = "afternoon"
	PeriodEvening   CoursePeriod = "evening"
	PeriodFullTime  CoursePeriod = "full-time"
)

// PersonalData is step 1 of the profile form.
type PersonalData struct {
	FullName  string `firestore:"fullName" json:"fullName" binding:"required"`
	RG        string `firestore:"rg" json:"rg" binding:"required"`
	BirthDate string `firestore:"birthDate" json:"birthDate" binding:"required"`
	Phone     string `firestore:"phone" json:"phone" binding:"required"`
}

// AddressData is step 2.
type AddressData struct {
	Street       string `firestore:"street" json:"street" binding:"required"`
	Number       string `firestore:"number" json:"number" binding:"required"`
	Neighborhood string `firestore:"neighborhood" json:"neighborhood" binding:"required"`
	City         string `firestore:"city,omitempty" json:"city,omitempty"`
	State        string `firestore:"state" json:"state" binding:"required,len=2"`
	ZipCode      string `firestore:"zipCode" json:"zipCode" binding:"required"`
}

// FamilyData is step 3. Parent names are required only when the matching
// has-flag is set; that cross check lives in the student service.
type FamilyData struct {
	HasFather     *bool         `firestore:"hasFather" json:"hasFather" binding:"required"`
	FatherName    string        `firestore:"fatherName,omitempty" json:"fatherName,omitempty"`
	HasMother     *bool         `firestore:"hasMother" json:"hasMother" binding:"required"`
	MotherName    string        `firestore:"motherName,omitempty" json:"motherName,omitempty"`
	MaritalStatus MaritalStatus `firestore:"maritalStatus" json:"maritalStatus" binding:"required,oneof=single married"`
	ResidenceType ResidenceType `firestore:"residenceType" json:"residenceType" binding:"required,oneof=owned rented"`
}

type CourseSchedule struct {
	StartTime string `firestore:"startTime" json:"startTime" binding:"required,datetime=15:04"`
	EndTime   string `firestore:"endTime" json:"endTime" binding:"required,datetime=15:04"`
}

// AcademicData is step 4.
type AcademicData struct {
	UniversityID           string         `firestore:"universityId" json:"universityId" binding:"required"`
	CurrentSemester        int            `firestore:"currentSemester" json:"currentSemester" binding:"required,min=1"`
	TotalSemesters         int            `firestore:"totalSemesters" json:"totalSemesters" binding:"required,min=1"`
	ExpectedGraduationYear int            `firestore:"expectedGraduationYear" json:"expectedGraduationYear" binding:"required"`
	WeeklyFrequency        []string       `firestore:"weeklyFrequency" json:"weeklyFrequency" binding:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	CoursePeriod           CoursePeriod   `firestore:"coursePeriod" json:"coursePeriod" binding:"required,oneof=morning afternoon evening full-time"`
	CourseSchedule         CourseSchedule `firestore:"courseSchedule" json:"courseSchedule" binding:"required"`
}

// ScholarshipData is step 5.
type ScholarshipData struct {
	HasScholarship           *bool           `firestore:"hasScholarship" json:"hasScholarship" binding:"required"`
	ScholarshipType          ScholarshipType `firestore:"scholarshipType,omitempty" json:"scholarshipType,omitempty" binding:"omitempty,oneof=prouni fies institutional other"`
	ScholarshipProofDocument string          `firestore:"scholarshipProofDocument,omitempty" json:"scholarshipProofDocument,omitempty"`
}

// DocumentsData is step 6. The document fields hold URLs uploaded elsewhere.
type DocumentsData struct {
	Photo3x4               string `firestore:"photo3x4,omitempty" json:"photo3x4,omitempty"`
	IdentityDocument       string `firestore:"identityDocument,omitempty" json:"identityDocument,omitempty"`
	AddressProof           string `firestore:"addressProof,omitempty" json:"addressProof,omitempty"`
	EnrollmentDeclaration  string `firestore:"enrollmentDeclaration,omitempty" json:"enrollmentDeclaration,omitempty"`
	ClassSchedule          string `firestore:"classSchedule,omitempty" json:"classSchedule,omitempty"`
	HandwrittenDeclaration string `firestore:"handwrittenDeclaration,omitempty" json:"handwrittenDeclaration,omitempty"`
	TermsAccepted          *bool  `firestore:"termsAccepted" json:"termsAccepted" binding:"required"`
	TermsAcceptedAt        string `firestore:"termsAcceptedAt,omitempty" json:"termsAcceptedAt,omitempty"`
}

// StudentProfile is the full profile document, keyed by the owning user's
// UID. It is only ever written as a whole.
type StudentProfile struct {
	UserID           string          `firestore:"userId" json:"userId"`
	PersonalData     PersonalData    `firestore:"personalData" json:"personalData"`
	Address          AddressData     `firestore:"address" json:"address"`
	FamilyData       FamilyData      `firestore:"familyData" json:"familyData"`
	AcademicData     AcademicData    `firestore:"academicData" json:"academicData"`
	Scholarship      ScholarshipData `firestore:"scholarship" json:"scholarship"`
	Documents        DocumentsData   `firestore:"documents" json:"documents"`
	ProfileCompleted bool            `firestore:"profileCompleted" json:"profileCompleted"`
	CreatedAt        time.Time       `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time       `firestore:"updatedAt" json:"updatedAt"`
}
