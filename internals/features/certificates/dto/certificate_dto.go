package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/certificates/model"
)

type CertificateDTO struct {
	CertificateID             uuid.UUID `json:"certificate_id"`
	CertificateCourseID       uuid.UUID `json:"certificate_course_id"`
	CertificateSerial         string    `json:"certificate_serial"`
	CertificateCourseTitle    string    `json:"certificate_course_title"`
	CertificateInstructorName string    `json:"certificate_instructor_name"`
	CertificateIssuedAt       time.Time `json:"certificate_issued_at"`
}

// VerifyCertificateDTO: respons endpoint verifikasi publik.
type VerifyCertificateDTO struct {
	Valid                     bool      `json:"valid"`
	CertificateSerial         string    `json:"certificate_serial"`
	CertificateCourseTitle    string    `json:"certificate_course_title"`
	CertificateInstructorName string    `json:"certificate_instructor_name"`
	CertificateIssuedAt       time.Time `json:"certificate_issued_at"`
}

func ToCertificateDTO(m model.CertificateModel) CertificateDTO {
	return CertificateDTO{
		CertificateID:             m.CertificateID,
		CertificateCourseID:       m.CertificateCourseID,
		CertificateSerial:         m.CertificateSerial,
		CertificateCourseTitle:    m.CertificateCourseTitle,
		CertificateInstructorName: m.CertificateInstructorName,
		CertificateIssuedAt:       m.CertificateIssuedAt,
	}
}
