package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/httpresp"
	"github.com/clinicdesk/clinic-scheduler/internal/middleware"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
	ucAppointment "github.com/clinicdesk/clinic-scheduler/internal/usecase/appointment"
)

type DoctorHandler struct {
	db             *gorm.DB
	availabilityUC *ucAppointment.GetAvailability
}

func NewDoctorHandler(db *gorm.DB, availabilityUC *ucAppointment.GetAvailability) *DoctorHandler {
	return &DoctorHandler{
		db:             db,
		availabilityUC: availabilityUC,
	}
}

// --------- Requests ---------

type CreateDoctorRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialty      string `json:"specialty"`
	Username       string `json:"username" binding:"required"`
	AvailableSlots string `json:"available_slots"`
}

// --------- Handlers ---------

func (h *DoctorHandler) List(c *gin.Context) {
	query := h.db.Order("name ASC")
	if specialty := c.Query("specialty"); specialty != "" {
		query = query.Where("specialty = ?", specialty)
	}

	var doctors []models.Doctor
	if err := query.Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Error listing doctors.")
		return
	}

	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Availability(c *gin.Context) {
	doctorRef := c.Param("username")
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, httperr.CodeValidation, "date is required.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), doctorRef, date)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"doctor": doctorRef,
		"date":   date,
		"slots":  slots,
	})
}

func (h *DoctorHandler) Create(c *gin.Context) {
	if role, _ := c.Get(middleware.ContextUserRole); role != models.RoleAdmin {
		httperr.Write(c, 403, "forbidden", "Only an administrator can register doctors.")
		return
	}

	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Missing required fields.")
		return
	}

	slots := req.AvailableSlots
	if slots == "" {
		slots = models.DefaultSlots
	}

	doctor := models.Doctor{
		Name:           req.Name,
		Specialty:      req.Specialty,
		Username:       req.Username,
		AvailableSlots: slots,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "username_already_exists", "Doctor username already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_doctor", "Error creating doctor.")
		return
	}

	httpresp.Created(c, doctor)
}
