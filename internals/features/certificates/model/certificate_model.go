package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CertificateModel struct {
	CertificateID       uuid.UUID `gorm:"column:certificate_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"certificate_id"`
	CertificateUserID   uuid.UUID `gorm:"column:certificate_user_id;type:uuid;not null;uniqueIndex:uq_certificates_user_course" json:"certificate_user_id"`
	CertificateCourseID uuid.UUID `gorm:"column:certificate_course_id;type:uuid;not null;uniqueIndex:uq_certificates_user_course" json:"certificate_course_id"`

	CertificateSerial         string    `gorm:"column:certificate_serial;size:32;not null;uniqueIndex" json:"certificate_serial"`
	CertificateCourseTitle    string    `gorm:"column:certificate_course_title;size:255;not null" json:"certificate_course_title"`
	CertificateInstructorName string    `gorm:"column:certificate_instructor_name;size:100;not null;default:''" json:"certificate_instructor_name"`
	CertificateIssuedAt       time.Time `gorm:"column:certificate_issued_at;autoCreateTime" json:"certificate_issued_at"`

	CertificateMetadata datatypes.JSONMap `gorm:"column:certificate_metadata;type:jsonb" json:"certificate_metadata,omitempty"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}

func (m *CertificateModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertificateID == uuid.Nil {
		m.CertificateID = uuid.New()
	}
	return nil
}
