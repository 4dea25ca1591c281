package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kursusku_backend/internals/features/certificates/model"
)

// newTestDB menyiapkan sqlite in-memory dengan skema minimal yang dibutuhkan
// CertificateService (DDL Postgres seperti gen_random_uuid tidak tersedia di
// sqlite; ID sertifikat diisi lewat BeforeCreate).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE courses (
			course_id TEXT PRIMARY KEY,
			course_title TEXT NOT NULL,
			course_instructor_name TEXT NOT NULL DEFAULT '',
			course_deleted_at DATETIME
		)`,
		`CREATE TABLE certificates (
			certificate_id TEXT PRIMARY KEY,
			certificate_user_id TEXT NOT NULL,
			certificate_course_id TEXT NOT NULL,
			certificate_serial TEXT NOT NULL UNIQUE,
			certificate_course_title TEXT NOT NULL,
			certificate_instructor_name TEXT NOT NULL DEFAULT '',
			certificate_issued_at DATETIME,
			certificate_metadata TEXT,
			UNIQUE (certificate_user_id, certificate_course_id)
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, title, instructor string) uuid.UUID {
	t.Helper()

	courseID := uuid.New()
	require.NoError(t, db.Exec(
		"INSERT INTO courses (course_id, course_title, course_instructor_name) VALUES (?, ?, ?)",
		courseID.String(), title, instructor,
	).Error)
	return courseID
}

func TestIssue_AtMostOncePerUserCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db)

	userID := uuid.New()
	courseID := seedCourse(t, db, "Belajar Go Dasar", "Pak Budi")

	first, issued, err := svc.Issue(context.Background(), userID, courseID, 87.5)
	require.NoError(t, err)
	assert.True(t, issued)
	assert.Equal(t, "Belajar Go Dasar", first.CertificateCourseTitle)
	assert.Equal(t, "Pak Budi", first.CertificateInstructorName)
	assert.Equal(t, certificateSchemaVersion, first.CertificateMetadata["schema_version"])
	assert.Equal(t, certificateIssuer, first.CertificateMetadata["issued_by"])
	assert.Equal(t, 87.5, first.CertificateMetadata["percentage"])

	// submission lulus kedua: tidak menerbitkan sertifikat baru
	second, issued, err := svc.Issue(context.Background(), userID, courseID, 99.0)
	require.NoError(t, err)
	assert.False(t, issued)
	assert.Equal(t, first.CertificateSerial, second.CertificateSerial)

	var count int64
	require.NoError(t, db.Model(&model.CertificateModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIssue_DistinctCoursesGetDistinctCertificates(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db)

	userID := uuid.New()
	courseA := seedCourse(t, db, "Kursus A", "Bu Sari")
	courseB := seedCourse(t, db, "Kursus B", "Bu Sari")

	certA, issued, err := svc.Issue(context.Background(), userID, courseA, 80)
	require.NoError(t, err)
	assert.True(t, issued)

	certB, issued, err := svc.Issue(context.Background(), userID, courseB, 90)
	require.NoError(t, err)
	assert.True(t, issued)
	assert.NotEqual(t, certA.CertificateSerial, certB.CertificateSerial)
}

func TestIssue_UnknownCourseFallsBackToGenericTitle(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db)

	cert, issued, err := svc.Issue(context.Background(), uuid.New(), uuid.New(), 75)
	require.NoError(t, err)
	assert.True(t, issued)
	assert.Equal(t, "Course", cert.CertificateCourseTitle)
	assert.Empty(t, cert.CertificateInstructorName)
}

func TestVerifyBySerial(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db)

	courseID := seedCourse(t, db, "Belajar Fiber", "Pak Joko")
	cert, _, err := svc.Issue(context.Background(), uuid.New(), courseID, 95)
	require.NoError(t, err)

	found, err := svc.VerifyBySerial(context.Background(), cert.CertificateSerial)
	require.NoError(t, err)
	assert.Equal(t, cert.CertificateID, found.CertificateID)

	_, err = svc.VerifyBySerial(context.Background(), "CERT-TIDAKADA1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
