// file: internals/features/center/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/features/center/courses/dto"
	"steam_backend/internals/features/center/courses/model"
	helper "steam_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

var courseSortColumns = map[string]string{
	"name":       "course_name",
	"price":      "course_price",
	"created_at": "course_created_at",
}

/*
	GET /courses
	Query: q, is_active, sort_by (name|price|created_at), order (asc|desc), page, per_page
*/
func (ctl *CourseController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("course_name ILIKE ?", "%"+q+"%")
	}
	switch strings.ToLower(c.Query("is_active")) {
	case "true":
		tx = tx.Where("course_is_active = ?", true)
	case "false":
		tx = tx.Where("course_is_active = ?", false)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	col, ok := courseSortColumns[c.Query("sort_by", "created_at")]
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by must be one of name, price, created_at")
	}
	dir := "DESC"
	if strings.EqualFold(c.Query("order"), "asc") {
		dir = "ASC"
	}

	var rows []model.CourseModel
	if err := tx.Order(col + " " + dir).Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), len(rows), helper.BuildPaginationFromOffset(total, pg.Offset, pg.Limit))
}

// GET /courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

// POST /courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.FromFiberError(c, helper.MapPGError(err, "course already exists"))
	}
	return helper.JsonCreated(c, "course created", dto.FromModel(*m))
}

// PATCH /courses/:id
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	var req dto.UpdateCourseRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	req.Apply(m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return helper.FromFiberError(c, helper.MapPGError(err, "course already exists"))
	}
	return helper.JsonUpdated(c, "course updated", dto.FromModel(*m))
}

// DELETE /courses/:id (soft)
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "course deleted", fiber.Map{"course_id": m.CourseID})
}

func (ctl *CourseController) find(c *fiber.Ctx) (*model.CourseModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "course not found")
		}
		return nil, err
	}
	return &m, nil
}
