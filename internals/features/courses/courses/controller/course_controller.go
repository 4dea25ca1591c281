package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/courses/courses/dto"
	"kursusku_backend/internals/features/courses/courses/model"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// ➕ Create course (admin)
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "courses",
		SlugColumn:       "course_slug",
		SoftDeleteColumn: "course_deleted_at",
		DefaultBase:      "course",
	}, body.CourseTitle)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}

	newCourse := model.CourseModel{
		CourseTitle:          body.CourseTitle,
		CourseSlug:           slug,
		CourseDescription:    body.CourseDescription,
		CourseInstructorName: body.CourseInstructorName,
		CoursePriceIDR:       body.CoursePriceIDR,
		CourseTags:           body.CourseTags,
	}
	if body.CourseIsPublished != nil {
		newCourse.CourseIsPublished = *body.CourseIsPublished
	}

	if err := ctrl.DB.Create(&newCourse).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create course")
	}

	return helper.JsonCreated(c, "Course berhasil dibuat", dto.ToCourseDTO(newCourse))
}

// 📄 Get published courses (public, paginated)
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_is_published = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count courses")
	}

	var courses []model.CourseModel
	if err := q.Order("course_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve courses")
	}

	response := make([]dto.CourseDTO, 0, len(courses))
	for _, course := range courses {
		response = append(response, dto.ToCourseDTO(course))
	}

	return helper.JsonList(c, "", response,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 Get course by slug (public)
func (ctrl *CourseController) GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_slug = ?", slug).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	return helper.JsonOK(c, "", dto.ToCourseDTO(course))
}

// ✏️ Update course (admin, partial)
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	if body.CourseTitle != nil {
		course.CourseTitle = *body.CourseTitle
	}
	if body.CourseDescription != nil {
		course.CourseDescription = body.CourseDescription
	}
	if body.CourseInstructorName != nil {
		course.CourseInstructorName = *body.CourseInstructorName
	}
	if body.CoursePriceIDR != nil {
		course.CoursePriceIDR = *body.CoursePriceIDR
	}
	if body.CourseTags != nil {
		course.CourseTags = body.CourseTags
	}
	if body.CourseIsPublished != nil {
		course.CourseIsPublished = *body.CourseIsPublished
	}

	if err := ctrl.DB.Save(&course).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update course")
	}

	return helper.JsonUpdated(c, "Course berhasil diupdate", dto.ToCourseDTO(course))
}

// 🖼 Upload thumbnail (admin) — dikonversi ke WebP
func (ctrl *CourseController) UploadCourseThumbnail(c *fiber.Ctx) error {
	id := c.Params("id")

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File thumbnail wajib diisi")
	}

	url, err := helper.SaveImageAsWebP("course-thumbnails", fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Model(&course).Update("course_thumbnail_url", url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save thumbnail")
	}

	return helper.JsonUpdated(c, "Thumbnail berhasil diupload", fiber.Map{
		"course_thumbnail_url": url,
	})
}

// ❌ Delete course (admin, soft delete)
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete course")
	}

	return helper.JsonDeleted(c, "Course berhasil dihapus", fiber.Map{"course_id": id})
}
