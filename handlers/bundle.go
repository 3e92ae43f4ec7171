package handlers

import (
	"medicore/services/account"
	"medicore/services/message"
	"medicore/services/report"
	"medicore/services/scheduling"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration stays declarative.
type HandlerBundle struct {
	// Scheduling endpoints
	CreateBooking        gin.HandlerFunc
	UpdateBookingStatus  gin.HandlerFunc
	DeleteBooking        gin.HandlerFunc
	GetBookingsByDoctor  gin.HandlerFunc
	GetBookingsByPatient gin.HandlerFunc
	GetAllBookings       gin.HandlerFunc
	CheckSlot            gin.HandlerFunc
	CreateAvailability   gin.HandlerFunc
	GetAvailability      gin.HandlerFunc
	UpdateAvailability   gin.HandlerFunc
	DeleteAvailability   gin.HandlerFunc
	DeleteSlot           gin.HandlerFunc

	// Per-role account endpoints
	Patients AccountHandlers
	Doctors  AccountHandlers
	Admins   AccountHandlers

	// Message endpoints
	CreateMessage       gin.HandlerFunc
	GetAllMessages      gin.HandlerFunc
	GetMessage          gin.HandlerFunc
	UpdateMessageStatus gin.HandlerFunc
	RespondMessage      gin.HandlerFunc
	DeleteMessage       gin.HandlerFunc

	// Report endpoints
	UploadReport gin.HandlerFunc
	GetMyReports gin.HandlerFunc

	Health gin.HandlerFunc
}

// AccountHandlers is the endpoint set shared by the three account roles.
type AccountHandlers struct {
	Register gin.HandlerFunc
	Login    gin.HandlerFunc
	Logout   gin.HandlerFunc
	Session  gin.HandlerFunc
	Get      gin.HandlerFunc
	GetAll   gin.HandlerFunc
	Update   gin.HandlerFunc
	Delete   gin.HandlerFunc
}

func newAccountHandlers(svc account.AccountService) AccountHandlers {
	return AccountHandlers{
		Register: RegisterAccountHandler(svc),
		Login:    LoginHandler(svc),
		Logout:   LogoutHandler(svc),
		Session:  SessionHandler(svc),
		Get:      GetAccountHandler(svc),
		GetAll:   GetAllAccountsHandler(svc),
		Update:   UpdateAccountHandler(svc),
		Delete:   DeleteAccountHandler(svc),
	}
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(
	schedSvc scheduling.SchedulingService,
	patientSvc, doctorSvc, adminSvc account.AccountService,
	messageSvc message.MessageService,
	reportSvc report.ReportService,
) *HandlerBundle {
	return &HandlerBundle{
		CreateBooking:        CreateBookingHandler(schedSvc),
		UpdateBookingStatus:  UpdateBookingStatusHandler(schedSvc),
		DeleteBooking:        DeleteBookingHandler(schedSvc),
		GetBookingsByDoctor:  GetBookingsByDoctorHandler(schedSvc),
		GetBookingsByPatient: GetBookingsByPatientHandler(schedSvc),
		GetAllBookings:       GetAllBookingsHandler(schedSvc),
		CheckSlot:            CheckSlotHandler(schedSvc),
		CreateAvailability:   CreateAvailabilityHandler(schedSvc),
		GetAvailability:      GetAvailabilityByDoctorHandler(schedSvc),
		UpdateAvailability:   UpdateAvailabilityHandler(schedSvc),
		DeleteAvailability:   DeleteAvailabilityHandler(schedSvc),
		DeleteSlot:           DeleteSlotHandler(schedSvc),

		Patients: newAccountHandlers(patientSvc),
		Doctors:  newAccountHandlers(doctorSvc),
		Admins:   newAccountHandlers(adminSvc),

		CreateMessage:       CreateMessageHandler(messageSvc),
		GetAllMessages:      GetAllMessagesHandler(messageSvc),
		GetMessage:          GetMessageHandler(messageSvc),
		UpdateMessageStatus: UpdateMessageStatusHandler(messageSvc),
		RespondMessage:      RespondMessageHandler(messageSvc),
		DeleteMessage:       DeleteMessageHandler(messageSvc),

		UploadReport: UploadReportHandler(reportSvc),
		GetMyReports: GetMyReportsHandler(reportSvc),

		Health: HealthHandler(),
	}
}
