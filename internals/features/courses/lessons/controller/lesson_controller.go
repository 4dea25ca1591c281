package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "kursusku_backend/internals/features/courses/courses/model"
	"kursusku_backend/internals/features/courses/lessons/dto"
	"kursusku_backend/internals/features/courses/lessons/model"
	helper "kursusku_backend/internals/helpers"
)

var validateLesson = validator.New()

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

// ➕ Create module (admin)
func (ctrl *LessonController) CreateCourseModule(c *fiber.Ctx) error {
	var body dto.CreateCourseModuleRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLesson.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	courseID := uuid.MustParse(body.CourseModuleCourseID)
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	newModule := model.CourseModuleModel{
		CourseModuleCourseID: courseID,
		CourseModuleTitle:    body.CourseModuleTitle,
		CourseModulePosition: body.CourseModulePosition,
	}
	if err := ctrl.DB.Create(&newModule).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create module")
	}

	return helper.JsonCreated(c, "Module berhasil dibuat", newModule)
}

// ➕ Create lesson (admin)
func (ctrl *LessonController) CreateLesson(c *fiber.Ctx) error {
	var body dto.CreateLessonRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLesson.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	moduleID := uuid.MustParse(body.LessonModuleID)
	var module model.CourseModuleModel
	if err := ctrl.DB.First(&module, "course_module_id = ?", moduleID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Module not found")
	}

	newLesson := model.LessonModel{
		LessonModuleID: moduleID,
		LessonCourseID: module.CourseModuleCourseID,
		LessonTitle:    body.LessonTitle,
		LessonContent:  body.LessonContent,
		LessonVideoURL: body.LessonVideoURL,
		LessonPosition: body.LessonPosition,
	}
	if err := ctrl.DB.Create(&newLesson).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create lesson")
	}

	return helper.JsonCreated(c, "Lesson berhasil dibuat", dto.ToLessonDTO(newLesson))
}

// 📄 Get course content: modules + lessons terurut
func (ctrl *LessonController) GetCourseContent(c *fiber.Ctx) error {
	courseID := c.Params("course_id")

	var modules []model.CourseModuleModel
	if err := ctrl.DB.
		Where("course_module_course_id = ?", courseID).
		Order("course_module_position ASC").
		Find(&modules).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve modules")
	}

	var lessons []model.LessonModel
	if err := ctrl.DB.
		Where("lesson_course_id = ?", courseID).
		Order("lesson_position ASC").
		Find(&lessons).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve lessons")
	}

	// group lessons per module
	byModule := make(map[string][]dto.LessonDTO, len(modules))
	for _, l := range lessons {
		key := l.LessonModuleID.String()
		byModule[key] = append(byModule[key], dto.ToLessonDTO(l))
	}

	response := make([]dto.CourseModuleWithLessonsDTO, 0, len(modules))
	for _, m := range modules {
		key := m.CourseModuleID.String()
		items := byModule[key]
		if items == nil {
			items = []dto.LessonDTO{}
		}
		response = append(response, dto.CourseModuleWithLessonsDTO{
			CourseModuleID:       key,
			CourseModuleTitle:    m.CourseModuleTitle,
			CourseModulePosition: m.CourseModulePosition,
			Lessons:              items,
		})
	}

	return helper.JsonOK(c, "", response)
}

// ✏️ Update lesson (admin, partial)
func (ctrl *LessonController) UpdateLesson(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateLessonRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLesson.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var lesson model.LessonModel
	if err := ctrl.DB.First(&lesson, "lesson_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Lesson not found")
	}

	if body.LessonTitle != nil {
		lesson.LessonTitle = *body.LessonTitle
	}
	if body.LessonContent != nil {
		lesson.LessonContent = body.LessonContent
	}
	if body.LessonVideoURL != nil {
		lesson.LessonVideoURL = body.LessonVideoURL
	}
	if body.LessonPosition != nil {
		lesson.LessonPosition = *body.LessonPosition
	}

	if err := ctrl.DB.Save(&lesson).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update lesson")
	}

	return helper.JsonUpdated(c, "Lesson berhasil diupdate", dto.ToLessonDTO(lesson))
}

// ❌ Delete lesson (admin)
func (ctrl *LessonController) DeleteLesson(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.LessonModel{}, "lesson_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete lesson")
	}

	return helper.JsonDeleted(c, "Lesson berhasil dihapus", fiber.Map{"lesson_id": id})
}
