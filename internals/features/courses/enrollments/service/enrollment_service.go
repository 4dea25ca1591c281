package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kursusku_backend/internals/features/courses/enrollments/model"
)

type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// Enroll: idempotent — user yang sudah terdaftar tidak membuat baris kedua.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID uuid.UUID) (*model.EnrollmentModel, error) {
	enrollment := model.EnrollmentModel{
		EnrollmentUserID:   userID,
		EnrollmentCourseID: courseID,
		EnrollmentStatus:   model.EnrollmentStatusActive,
	}

	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&enrollment)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// sudah ada → ambil baris existing
		if err := s.DB.WithContext(ctx).
			Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).
			First(&enrollment).Error; err != nil {
			return nil, err
		}
	}
	return &enrollment, nil
}

// MarkCourseCompleted dipanggil best-effort dari alur grading ujian:
// set status completed + simpan persentase kelulusan tertinggi.
func (s *EnrollmentService) MarkCourseCompleted(ctx context.Context, userID, courseID uuid.UUID, percentage float64) error {
	var enrollment model.EnrollmentModel
	err := s.DB.WithContext(ctx).
		Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err != nil {
		return fmt.Errorf("enrollment lookup: %w", err)
	}

	updates := map[string]interface{}{
		"enrollment_status": model.EnrollmentStatusCompleted,
	}
	if percentage > enrollment.EnrollmentProgressPercent {
		updates["enrollment_progress_percent"] = percentage
	}
	if enrollment.EnrollmentCompletedAt == nil {
		now := time.Now().UTC()
		updates["enrollment_completed_at"] = now
	}

	if err := s.DB.WithContext(ctx).
		Model(&enrollment).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("enrollment update: %w", err)
	}
	return nil
}
