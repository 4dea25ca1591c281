package dto

import (
	"time"

	"kursusku_backend/internals/features/courses/lessons/model"
)

// ========================
// Request DTOs
// ========================

type CreateCourseModuleRequest struct {
	CourseModuleCourseID string `json:"course_module_course_id" validate:"required,uuid"`
	CourseModuleTitle    string `json:"course_module_title" validate:"required,min=3,max=255"`
	CourseModulePosition int    `json:"course_module_position" validate:"gte=0"`
}

type CreateLessonRequest struct {
	LessonModuleID string  `json:"lesson_module_id" validate:"required,uuid"`
	LessonTitle    string  `json:"lesson_title" validate:"required,min=3,max=255"`
	LessonContent  *string `json:"lesson_content,omitempty"`
	LessonVideoURL *string `json:"lesson_video_url,omitempty" validate:"omitempty,url"`
	LessonPosition int     `json:"lesson_position" validate:"gte=0"`
}

type UpdateLessonRequest struct {
	LessonTitle    *string `json:"lesson_title,omitempty" validate:"omitempty,min=3,max=255"`
	LessonContent  *string `json:"lesson_content,omitempty"`
	LessonVideoURL *string `json:"lesson_video_url,omitempty" validate:"omitempty,url"`
	LessonPosition *int    `json:"lesson_position,omitempty" validate:"omitempty,gte=0"`
}

// ========================
// Response DTOs
// ========================

type LessonDTO struct {
	LessonID       string    `json:"lesson_id"`
	LessonModuleID string    `json:"lesson_module_id"`
	LessonCourseID string    `json:"lesson_course_id"`
	LessonTitle    string    `json:"lesson_title"`
	LessonContent  *string   `json:"lesson_content,omitempty"`
	LessonVideoURL *string   `json:"lesson_video_url,omitempty"`
	LessonPosition int       `json:"lesson_position"`
	LessonCreatedAt time.Time `json:"lesson_created_at"`
}

type CourseModuleWithLessonsDTO struct {
	CourseModuleID       string      `json:"course_module_id"`
	CourseModuleTitle    string      `json:"course_module_title"`
	CourseModulePosition int         `json:"course_module_position"`
	Lessons              []LessonDTO `json:"lessons"`
}

// ========================
// Converters
// ========================

func ToLessonDTO(m model.LessonModel) LessonDTO {
	return LessonDTO{
		LessonID:        m.LessonID.String(),
		LessonModuleID:  m.LessonModuleID.String(),
		LessonCourseID:  m.LessonCourseID.String(),
		LessonTitle:     m.LessonTitle,
		LessonContent:   m.LessonContent,
		LessonVideoURL:  m.LessonVideoURL,
		LessonPosition:  m.LessonPosition,
		LessonCreatedAt: m.LessonCreatedAt,
	}
}
