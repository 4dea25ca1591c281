package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModuleModel: pengelompokan materi di dalam kursus (urut).
type CourseModuleModel struct {
	CourseModuleID       uuid.UUID `gorm:"column:course_module_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"course_module_id"`
	CourseModuleCourseID uuid.UUID `gorm:"column:course_module_course_id;type:uuid;not null;index" json:"course_module_course_id"`
	CourseModuleTitle    string    `gorm:"column:course_module_title;size:255;not null" json:"course_module_title"`
	CourseModulePosition int       `gorm:"column:course_module_position;not null;default:0" json:"course_module_position"`

	CourseModuleCreatedAt time.Time `gorm:"column:course_module_created_at;autoCreateTime" json:"course_module_created_at"`
	CourseModuleUpdatedAt time.Time `gorm:"column:course_module_updated_at;autoUpdateTime" json:"course_module_updated_at"`
}

func (CourseModuleModel) TableName() string {
	return "course_modules"
}
