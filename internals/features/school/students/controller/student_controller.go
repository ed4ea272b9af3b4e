// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeService "schoolku_backend/internals/features/finance/fees/service"
	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB *gorm.DB
}

// POST /students
// Pendaftaran siswa + materialisasi tagihan wajib jalan dalam satu transaksi:
// siswa tidak pernah terlihat "terdaftar tanpa kewajiban".
func (h *StudentController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	req.StudentAdmissionNumber = strings.TrimSpace(req.StudentAdmissionNumber)
	req.StudentFullName = strings.TrimSpace(req.StudentFullName)
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := model.Student{
		StudentAdmissionNumber: req.StudentAdmissionNumber,
		StudentFullName:        req.StudentFullName,
		StudentAcademicYearID:  req.StudentAcademicYearID,
		StudentGradeID:         req.StudentGradeID,
		StudentDivisionID:      req.StudentDivisionID,
		StudentIsActive:        true,
	}

	var mat feeService.MaterializeResult
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		var err error
		mat, err = feeService.MaterializeForStudent(tx, m.StudentID, m.StudentGradeID, m.StudentAcademicYearID)
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, http.StatusConflict, "admission number already exists")
		}
		return helper.JsonError(c, http.StatusInternalServerError, txErr.Error())
	}

	return helper.JsonCreated(c, "student created", dto.StudentCreateResponse{
		Student:      dto.ToStudentResponse(m),
		Materialized: mat,
	})
}

// GET /students
func (h *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&model.Student{})
	if s := c.Query("academic_year_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid academic_year_id")
		}
		q = q.Where("student_academic_year_id = ?", id)
	}
	if s := c.Query("grade_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "invalid grade_id")
		}
		q = q.Where("student_grade_id = ?", id)
	}
	if c.Query("active") == "true" {
		q = q.Where("student_is_active = true")
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		q = q.Where("student_full_name ILIKE ? OR student_admission_number ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.Student
	if err := q.Order("student_full_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToStudentResponse(m))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

// GET /students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToStudentResponse(m))
}

// PUT /students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if req.StudentFullName != nil {
		m.StudentFullName = strings.TrimSpace(*req.StudentFullName)
	}
	if req.StudentDivisionID != nil {
		m.StudentDivisionID = req.StudentDivisionID
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(m))
}

// PUT /students/:id/transfer
// Pindah grade / tahun ajaran: penempatan baru disimpan, tagihan lama yang
// tidak lagi berlaku di-cancel (yang sudah dibayar dilewati), dan tagihan
// wajib penempatan baru dimaterialisasi. Semuanya satu transaksi.
func (h *StudentController) Transfer(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var req dto.StudentTransferRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m model.Student
	var rec feeService.ReconcileResult
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "student_id = ?", id).Error; err != nil {
			return err
		}
		m.StudentAcademicYearID = req.StudentAcademicYearID
		m.StudentGradeID = req.StudentGradeID
		m.StudentDivisionID = req.StudentDivisionID
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		var err error
		rec, err = feeService.ReconcileForStudent(tx, m.StudentID, m.StudentGradeID, m.StudentAcademicYearID,
			"student transferred")
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, txErr.Error())
	}

	return helper.JsonUpdated(c, "student transferred", dto.StudentTransferResponse{
		Student:   dto.ToStudentResponse(m),
		Reconcile: rec,
	})
}

// PUT /students/:id/deactivate
// Nonaktif = keluar/lulus. Tagihan yang belum dibayar sama sekali di-cancel.
func (h *StudentController) Deactivate(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var m model.Student
	var cancel feeService.CancelResult
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "student_id = ?", id).Error; err != nil {
			return err
		}
		m.StudentIsActive = false
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		var err error
		cancel, err = feeService.CancelForStudent(tx, m.StudentID, "student deactivated")
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, txErr.Error())
	}

	return helper.JsonUpdated(c, "student deactivated", fiber.Map{
		"student": dto.ToStudentResponse(m),
		"cancel":  cancel,
	})
}
