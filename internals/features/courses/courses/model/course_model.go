package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID             uuid.UUID      `gorm:"column:course_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"course_id"`
	CourseTitle          string         `gorm:"column:course_title;size:255;not null" json:"course_title"`
	CourseSlug           string         `gorm:"column:course_slug;size:160;uniqueIndex;not null" json:"course_slug"`
	CourseDescription    *string        `gorm:"column:course_description;type:text" json:"course_description,omitempty"`
	CourseInstructorName string         `gorm:"column:course_instructor_name;size:100;not null" json:"course_instructor_name"`
	CoursePriceIDR       int            `gorm:"column:course_price_idr;not null;default:0" json:"course_price_idr"`
	CourseTags           pq.StringArray `gorm:"column:course_tags;type:text[]" json:"course_tags,omitempty"`
	CourseThumbnailURL   *string        `gorm:"column:course_thumbnail_url" json:"course_thumbnail_url,omitempty"`
	CourseIsPublished    bool           `gorm:"column:course_is_published;not null;default:false" json:"course_is_published"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"-"`
}

func (CourseModel) TableName() string {
	return "courses"
}
