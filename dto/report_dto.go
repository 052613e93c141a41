package dto

// Report rows are scanned straight out of aggregate queries; json tags
// match the column aliases.

type ReportRangeDTO struct {
	From string `form:"start_date"`
	To   string `form:"end_date"`
}

type OverviewStats struct {
	TotalTickets     int64   `json:"total_tickets"`
	ResolvedTickets  int64   `json:"resolved_tickets"`
	TotalBorrowings  int64   `json:"total_borrowings"`
	ActiveBorrowings int64   `json:"active_borrowings"`
	OverdueItems     int64   `json:"overdue_items"`
	ActiveStudents   int64   `json:"active_students"`
	AvgRating        float64 `json:"avg_rating"`
	FeedbackCount    int64   `json:"feedback_count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type AdminCount struct {
	FullName string `json:"full_name"`
	Count    int64  `json:"count"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type MostBorrowed struct {
	Name          string `json:"name"`
	Model         string `json:"model"`
	Category      string `json:"category"`
	RequestCount  int64  `json:"request_count"`
	TotalQuantity int64  `json:"total_quantity"`
}

type Utilization struct {
	Name              string  `json:"name"`
	TotalQuantity     int     `json:"total_quantity"`
	QuantityAvailable int     `json:"quantity_available"`
	UtilizationPct    float64 `json:"utilization_pct"`
}

type ActiveStudent struct {
	StudentID     string `json:"student_id"`
	FullName      string `json:"full_name"`
	Course        string `json:"course"`
	TicketCount   int64  `json:"ticket_count"`
	RequestCount  int64  `json:"request_count"`
	TotalActivity int64  `json:"total_activity"`
}

type CourseActivity struct {
	Course       string `json:"course"`
	StudentCount int64  `json:"student_count"`
	TicketCount  int64  `json:"ticket_count"`
	RequestCount int64  `json:"request_count"`
}

type TicketAnalytics struct {
	ByStatus           []StatusCount `json:"by_status"`
	ByType             []NameCount   `json:"by_type"`
	ByPriority         []StatusCount `json:"by_priority"`
	ByAdmin            []AdminCount  `json:"by_admin"`
	DailyVolume        []DateCount   `json:"daily_volume"`
	PhoneTickets       int64         `json:"phone_tickets"`
	AvgResolutionHours float64       `json:"avg_resolution_hours"`
}

type EquipmentAnalytics struct {
	ByStatus      []StatusCount  `json:"by_status"`
	MostBorrowed  []MostBorrowed `json:"most_borrowed"`
	Utilization   []Utilization  `json:"utilization"`
	ByCategory    []NameCount    `json:"by_category"`
	AvgBorrowDays float64        `json:"avg_borrow_days"`
}

type StudentAnalytics struct {
	MostActive []ActiveStudent  `json:"most_active"`
	ByCourse   []CourseActivity `json:"by_course"`
	ByYear     []StatusCount    `json:"by_year"`
}

type FeedbackStats struct {
	Count          int64   `json:"count"`
	AvgRating      float64 `json:"avg_rating"`
	RecommendPct   float64 `json:"recommend_pct"`
	SatisfiedCount int64   `json:"satisfied_count"`
}

type DashboardCounts struct {
	PendingTickets    int64 `json:"pending_tickets"`
	InProgressTickets int64 `json:"in_progress_tickets"`
	PendingBorrowings int64 `json:"pending_borrowings"`
	ActiveBorrowings  int64 `json:"active_borrowings"`
	OverdueItems      int64 `json:"overdue_items"`
	EquipmentInStock  int64 `json:"equipment_in_stock"`
	RecentFeedback    int64 `json:"recent_feedback"`
}

type StudentStats struct {
	OpenTickets     int64 `json:"open_tickets"`
	ResolvedTickets int64 `json:"resolved_tickets"`
	ActiveLoans     int64 `json:"active_loans"`
	PendingRequests int64 `json:"pending_requests"`
}
