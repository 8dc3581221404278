package domain

import "time"

// SAGStatus is the overall compliance state of a participant's SAG documents.
type SAGStatus string

const (
	SAGComplete      SAGStatus = "COMPLETE"
	SAGIncomplete    SAGStatus = "INCOMPLETE"
	SAGPending       SAGStatus = "PENDING"
	SAGNotApplicable SAGStatus = "NOT_APPLICABLE"
)

// SAGDocumentSlot names one of the three required SAG compliance documents.
type SAGDocumentSlot string

const (
	SlotCholinesterase     SAGDocumentSlot = "CHOLINESTERASE"      // Cholinesterase exam result
	SlotMedicalCertificate SAGDocumentSlot = "MEDICAL_CERTIFICATE" // Medical fitness certificate
	SlotPowerOfAttorney    SAGDocumentSlot = "POWER_OF_ATTORNEY"   // Simple power-of-attorney for credential pickup
)

// SAGDocument is the state of a single compliance document slot.
type SAGDocument struct {
	URL        string     `json:"url,omitempty"`
	ExamDate   *time.Time `json:"examDate,omitempty"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	Valid      bool       `json:"valid"`
}

// IsEmpty reports whether nothing has been recorded for the slot yet.
func (d SAGDocument) IsEmpty() bool {
	return d.URL == "" && d.ExamDate == nil && d.ExpiryDate == nil && !d.Valid
}

// SAGRecord holds the three compliance document slots.
type SAGRecord struct {
	Cholinesterase     SAGDocument `json:"cholinesterase"`
	MedicalCertificate SAGDocument `json:"medicalCertificate"`
	PowerOfAttorney    SAGDocument `json:"powerOfAttorney"`
}

// Slot returns a pointer to the document in the named slot, or nil for an
// unknown slot name.
func (r *SAGRecord) Slot(slot SAGDocumentSlot) *SAGDocument {
	switch slot {
	case SlotCholinesterase:
		return &r.Cholinesterase
	case SlotMedicalCertificate:
		return &r.MedicalCertificate
	case SlotPowerOfAttorney:
		return &r.PowerOfAttorney
	}
	return nil
}

// DeriveSAGStatus recomputes the overall compliance status from the document
// slots. Courses without the SAG requirement always yield NotApplicable.
func DeriveSAGStatus(rec SAGRecord, courseRequiresSAG bool) SAGStatus {
	if !courseRequiresSAG {
		return SAGNotApplicable
	}
	docs := []SAGDocument{rec.Cholinesterase, rec.MedicalCertificate, rec.PowerOfAttorney}
	validCount := 0
	touched := false
	for _, d := range docs {
		if d.Valid {
			validCount++
		}
		if !d.IsEmpty() {
			touched = true
		}
	}
	switch {
	case validCount == len(docs):
		return SAGComplete
	case !touched:
		return SAGPending
	default:
		return SAGIncomplete
	}
}

// Participant is one trainee enrolled in an execution.
type Participant struct {
	ParticipantID  string    `json:"participantID"`
	RUT            string    `json:"rut"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	EducationLevel string    `json:"educationLevel,omitempty"`
	AttendancePct  float64   `json:"attendancePct"` // 0..100
	FinalGrade     *float64  `json:"finalGrade,omitempty"`
	SAGDocuments   SAGRecord `json:"sagDocuments"`
	SAGStatus      SAGStatus `json:"sagStatus"`
}
