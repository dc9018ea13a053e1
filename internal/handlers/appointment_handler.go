package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-scheduler/internal/dto"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/clinicdesk/clinic-scheduler/internal/usecase/appointment"
)

const timestampLayout = "2006-01-02 15:04:05"

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC        *ucAppointment.Book
	confirmUC     *ucAppointment.Confirm
	cancelUC      *ucAppointment.Cancel
	startUC       *ucAppointment.StartConsultation
	completeUC    *ucAppointment.CompleteConsultation
	detailsUC     *ucAppointment.GetDetails
	forPatientUC  *ucAppointment.ListForPatient
	forDoctorUC   *ucAppointment.ListForDoctor
	listAllUC     *ucAppointment.ListAll
}

func NewAppointmentHandler(
	bookUC *ucAppointment.Book,
	confirmUC *ucAppointment.Confirm,
	cancelUC *ucAppointment.Cancel,
	startUC *ucAppointment.StartConsultation,
	completeUC *ucAppointment.CompleteConsultation,
	detailsUC *ucAppointment.GetDetails,
	forPatientUC *ucAppointment.ListForPatient,
	forDoctorUC *ucAppointment.ListForDoctor,
	listAllUC *ucAppointment.ListAll,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:       bookUC,
		confirmUC:    confirmUC,
		cancelUC:     cancelUC,
		startUC:      startUC,
		completeUC:   completeUC,
		detailsUC:    detailsUC,
		forPatientUC: forPatientUC,
		forDoctorUC:  forDoctorUC,
		listAllUC:    listAllUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookRequest struct {
	DoctorID        string `json:"doctorId" binding:"required"`
	PatientUsername string `json:"patientUsername" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Reason          string `json:"reason"`
}

type CompleteRequest struct {
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Missing required fields.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookInput{
		DoctorRef:  req.DoctorID,
		PatientRef: req.PatientUsername,
		Date:       req.Date,
		Time:       req.Time,
		Reason:     req.Reason,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentView(ap))
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if _, err := h.confirmUC.Execute(c.Request.Context(), id); err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Message(c, "Appointment confirmed successfully")
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if _, err := h.cancelUC.Execute(c.Request.Context(), id); err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Message(c, "Appointment cancelled successfully")
}

func (h *AppointmentHandler) StartConsultation(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.startUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":    "Consultation started successfully",
		"start_time": ap.ConsultationStart.Format(timestampLayout),
	})
}

func (h *AppointmentHandler) CompleteConsultation(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid request body.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), ucAppointment.CompleteInput{
		ID:           id,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
		Notes:        req.Notes,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":    "Consultation completed successfully",
		"start_time": ap.ConsultationStart.Format(timestampLayout),
		"end_time":   ap.ConsultationEnd.Format(timestampLayout),
	})
}

// ======================================================
// READS
// ======================================================

func (h *AppointmentHandler) Details(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	view, err := h.detailsUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, view)
}

func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
	aps, err := h.forPatientUC.Execute(c.Request.Context(), c.Param("username"))
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, dto.NewAppointmentViews(aps))
}

func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	aps, err := h.forDoctorUC.Execute(c.Request.Context(), c.Param("username"))
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, dto.NewAppointmentViews(aps))
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	aps, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, dto.NewAppointmentViews(aps))
}

// ======================================================
// HELPERS
// ======================================================

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid appointment id.")
		return 0, false
	}
	return uint(id), true
}
