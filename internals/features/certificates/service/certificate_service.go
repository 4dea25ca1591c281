package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kursusku_backend/internals/features/certificates/model"
	courseModel "kursusku_backend/internals/features/courses/courses/model"
)

type CertificateService struct {
	DB *gorm.DB
}

func NewCertificateService(db *gorm.DB) *CertificateService {
	return &CertificateService{DB: db}
}

// Nama skema metadata sertifikat; naikkan kalau bentuk metadatanya berubah.
const certificateSchemaVersion = 1

const certificateIssuer = "exam_grading"

// Issue menerbitkan sertifikat untuk pasangan (user, course) — paling banyak
// satu kali. Pemanggilan ulang mengembalikan sertifikat existing dengan
// issued=false. Race antar request ditahan oleh unique index
// uq_certificates_user_course + ON CONFLICT DO NOTHING.
// percentage = persentase kelulusan ujian yang memicu penerbitan.
func (s *CertificateService) Issue(ctx context.Context, userID, courseID uuid.UUID, percentage float64) (*model.CertificateModel, bool, error) {
	var existing model.CertificateModel
	err := s.DB.WithContext(ctx).
		Where("certificate_user_id = ? AND certificate_course_id = ?", userID, courseID).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	serial, err := GenerateSerial()
	if err != nil {
		return nil, false, err
	}

	courseTitle := "Course"
	instructorName := ""
	var course courseModel.CourseModel
	if err := s.DB.WithContext(ctx).
		Select("course_title", "course_instructor_name").
		First(&course, "course_id = ?", courseID).Error; err != nil {
		log.Println("[WARNING] Course lookup failed for certificate:", err)
	} else {
		if course.CourseTitle != "" {
			courseTitle = course.CourseTitle
		}
		instructorName = course.CourseInstructorName
	}

	cert := model.CertificateModel{
		CertificateUserID:         userID,
		CertificateCourseID:       courseID,
		CertificateSerial:         serial,
		CertificateCourseTitle:    courseTitle,
		CertificateInstructorName: instructorName,
		CertificateMetadata: datatypes.JSONMap{
			"schema_version": certificateSchemaVersion,
			"issued_by":      certificateIssuer,
			"percentage":     percentage,
		},
	}

	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "certificate_user_id"}, {Name: "certificate_course_id"}},
			DoNothing: true,
		}).
		Create(&cert)
	if res.Error != nil {
		return nil, false, res.Error
	}

	if res.RowsAffected == 0 {
		// kalah race → ambil baris pemenang
		if err := s.DB.WithContext(ctx).
			Where("certificate_user_id = ? AND certificate_course_id = ?", userID, courseID).
			First(&existing).Error; err != nil {
			return nil, false, err
		}
		return &existing, false, nil
	}

	return &cert, true, nil
}

// VerifyBySerial: lookup publik untuk validasi keaslian sertifikat.
func (s *CertificateService) VerifyBySerial(ctx context.Context, serial string) (*model.CertificateModel, error) {
	var cert model.CertificateModel
	if err := s.DB.WithContext(ctx).
		Where("certificate_serial = ?", serial).
		First(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}
