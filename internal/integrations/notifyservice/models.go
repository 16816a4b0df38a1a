package notifyservice

// BookingNotification уведомление о новой брони слота приёма
type BookingNotification struct {
	SlotID       int64  `json:"slot_id"`
	ManagerID    int64  `json:"manager_id"`
	Date         string `json:"date"`       // YYYY-MM-DD
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time"`   // HH:MM
	VisitorName  string `json:"visitor_name"`
	VisitorEmail string `json:"visitor_email"`
}
