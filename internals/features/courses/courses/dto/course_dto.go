package dto

import (
	"time"

	"kursusku_backend/internals/features/courses/courses/model"
)

// ========================
// Request DTOs
// ========================

type CreateCourseRequest struct {
	CourseTitle          string   `json:"course_title" validate:"required,min=5,max=255"`
	CourseDescription    *string  `json:"course_description,omitempty"`
	CourseInstructorName string   `json:"course_instructor_name" validate:"required,min=3,max=100"`
	CoursePriceIDR       int      `json:"course_price_idr" validate:"gte=0"`
	CourseTags           []string `json:"course_tags,omitempty"`
	CourseIsPublished    *bool    `json:"course_is_published,omitempty"`
}

type UpdateCourseRequest struct {
	CourseTitle          *string  `json:"course_title,omitempty" validate:"omitempty,min=5,max=255"`
	CourseDescription    *string  `json:"course_description,omitempty"`
	CourseInstructorName *string  `json:"course_instructor_name,omitempty" validate:"omitempty,min=3,max=100"`
	CoursePriceIDR       *int     `json:"course_price_idr,omitempty" validate:"omitempty,gte=0"`
	CourseTags           []string `json:"course_tags,omitempty"`
	CourseIsPublished    *bool    `json:"course_is_published,omitempty"`
}

// ========================
// Response DTO
// ========================

type CourseDTO struct {
	CourseID             string    `json:"course_id"`
	CourseTitle          string    `json:"course_title"`
	CourseSlug           string    `json:"course_slug"`
	CourseDescription    *string   `json:"course_description,omitempty"`
	CourseInstructorName string    `json:"course_instructor_name"`
	CoursePriceIDR       int       `json:"course_price_idr"`
	CourseTags           []string  `json:"course_tags,omitempty"`
	CourseThumbnailURL   *string   `json:"course_thumbnail_url,omitempty"`
	CourseIsPublished    bool      `json:"course_is_published"`
	CourseCreatedAt      time.Time `json:"course_created_at"`
}

// ========================
// Converter
// ========================

func ToCourseDTO(m model.CourseModel) CourseDTO {
	return CourseDTO{
		CourseID:             m.CourseID.String(),
		CourseTitle:          m.CourseTitle,
		CourseSlug:           m.CourseSlug,
		CourseDescription:    m.CourseDescription,
		CourseInstructorName: m.CourseInstructorName,
		CoursePriceIDR:       m.CoursePriceIDR,
		CourseTags:           m.CourseTags,
		CourseThumbnailURL:   m.CourseThumbnailURL,
		CourseIsPublished:    m.CourseIsPublished,
		CourseCreatedAt:      m.CourseCreatedAt,
	}
}
