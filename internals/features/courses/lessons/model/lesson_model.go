package model

import (
	"time"

	"github.com/google/uuid"
)

type LessonModel struct {
	LessonID       uuid.UUID `gorm:"column:lesson_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"lesson_id"`
	LessonModuleID uuid.UUID `gorm:"column:lesson_module_id;type:uuid;not null;index" json:"lesson_module_id"`
	LessonCourseID uuid.UUID `gorm:"column:lesson_course_id;type:uuid;not null;index" json:"lesson_course_id"`
	LessonTitle    string    `gorm:"column:lesson_title;size:255;not null" json:"lesson_title"`
	LessonContent  *string   `gorm:"column:lesson_content;type:text" json:"lesson_content,omitempty"`
	LessonVideoURL *string   `gorm:"column:lesson_video_url" json:"lesson_video_url,omitempty"`
	LessonPosition int       `gorm:"column:lesson_position;not null;default:0" json:"lesson_position"`

	LessonCreatedAt time.Time `gorm:"column:lesson_created_at;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt time.Time `gorm:"column:lesson_updated_at;autoUpdateTime" json:"lesson_updated_at"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
