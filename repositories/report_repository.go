package repositories

import (
	"time"

	"github.com/hwlab/portal-go/db"
	"github.com/hwlab/portal-go/dto"
)

type ReportRepo interface {
	Overview(from, to time.Time) (dto.OverviewStats, error)
	TicketAnalytics(from, to time.Time) (dto.TicketAnalytics, error)
	EquipmentAnalytics(from, to time.Time) (dto.EquipmentAnalytics, error)
	StudentAnalytics(from, to time.Time) (dto.StudentAnalytics, error)
	DashboardCounts() (dto.DashboardCounts, error)
}

type DBReportRepo struct{}

func (r *DBReportRepo) Overview(from, to time.Time) (dto.OverviewStats, error) {
	var stats dto.OverviewStats
	err := db.DB.Raw(`
		SELECT
		(SELECT COUNT(*) FROM assistance_tickets WHERE created_at BETWEEN ? AND ?) AS total_tickets,
		(SELECT COUNT(*) FROM assistance_tickets WHERE status = 'resolved' AND created_at BETWEEN ? AND ?) AS resolved_tickets,
		(SELECT COUNT(*) FROM borrowing_requests WHERE created_at BETWEEN ? AND ?) AS total_borrowings,
		(SELECT COUNT(*) FROM borrowing_requests WHERE status = 'active') AS active_borrowings,
		(SELECT COUNT(*) FROM borrowing_requests WHERE status = 'overdue') AS overdue_items,
		(SELECT COUNT(DISTINCT student_id) FROM (
			SELECT student_id FROM assistance_tickets WHERE created_at BETWEEN ? AND ?
			UNION
			SELECT student_id FROM borrowing_requests WHERE created_at BETWEEN ? AND ?
		) active) AS active_students,
		(SELECT COALESCE(AVG(rating), 0) FROM (
			SELECT rating FROM assistance_feedback WHERE created_at BETWEEN ? AND ?
			UNION ALL
			SELECT rating FROM borrowing_feedback WHERE created_at BETWEEN ? AND ?
		) combined) AS avg_rating,
		(SELECT COUNT(*) FROM (
			SELECT id FROM assistance_feedback WHERE created_at BETWEEN ? AND ?
			UNION ALL
			SELECT id FROM borrowing_feedback WHERE created_at BETWEEN ? AND ?
		) combined) AS feedback_count`,
		from, to, from, to, from, to, from, to, from, to, from, to, from, to, from, to, from, to).Scan(&stats).Error
	return stats, err
}

func (r *DBReportRepo) TicketAnalytics(from, to time.Time) (dto.TicketAnalytics, error) {
	var out dto.TicketAnalytics

	err := db.DB.Raw(`
		SELECT status, COUNT(*) AS count
		FROM assistance_tickets
		WHERE created_at BETWEEN ? AND ?
		GROUP BY status ORDER BY count DESC`, from, to).Scan(&out.ByStatus).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT at.name, COUNT(*) AS count
		FROM assistance_tickets t
		JOIN assistance_types at ON at.id = t.assistance_type_id
		WHERE t.created_at BETWEEN ? AND ?
		GROUP BY at.name ORDER BY count DESC`, from, to).Scan(&out.ByType).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT priority AS status, COUNT(*) AS count
		FROM assistance_tickets
		WHERE created_at BETWEEN ? AND ?
		GROUP BY priority ORDER BY count DESC`, from, to).Scan(&out.ByPriority).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT a.full_name, COUNT(*) AS count
		FROM assistance_tickets t
		JOIN admins a ON a.id = t.assigned_to
		WHERE t.created_at BETWEEN ? AND ?
		GROUP BY a.full_name ORDER BY count DESC`, from, to).Scan(&out.ByAdmin).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT TO_CHAR(created_at::date, 'YYYY-MM-DD') AS date, COUNT(*) AS count
		FROM assistance_tickets
		WHERE created_at BETWEEN ? AND ?
		GROUP BY created_at::date ORDER BY date`, from, to).Scan(&out.DailyVolume).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT COUNT(*) FROM assistance_tickets
		WHERE phone_request = true AND created_at BETWEEN ? AND ?`, from, to).
		Scan(&out.PhoneTickets).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (resolved_at - created_at)) / 3600), 0)
		FROM assistance_tickets
		WHERE resolved_at IS NOT NULL AND created_at BETWEEN ? AND ?`, from, to).
		Scan(&out.AvgResolutionHours).Error
	return out, err
}

func (r *DBReportRepo) EquipmentAnalytics(from, to time.Time) (dto.EquipmentAnalytics, error) {
	var out dto.EquipmentAnalytics

	err := db.DB.Raw(`
		SELECT status, COUNT(*) AS count
		FROM equipment
		GROUP BY status ORDER BY count DESC`).Scan(&out.ByStatus).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT e.name, e.model, c.name AS category,
		COUNT(br.id) AS request_count,
		COALESCE(SUM(br.quantity_requested), 0) AS total_quantity
		FROM borrowing_requests br
		JOIN equipment e ON e.id = br.equipment_id
		JOIN equipment_categories c ON c.id = e.category_id
		WHERE br.created_at BETWEEN ? AND ?
		GROUP BY e.name, e.model, c.name
		ORDER BY request_count DESC
		LIMIT 10`, from, to).Scan(&out.MostBorrowed).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT name, total_quantity, quantity_available,
		ROUND((total_quantity - quantity_available) * 100.0 / NULLIF(total_quantity, 0), 1) AS utilization_pct
		FROM equipment
		WHERE status != 'retired'
		ORDER BY utilization_pct DESC NULLS LAST`).Scan(&out.Utilization).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT c.name, COUNT(br.id) AS count
		FROM borrowing_requests br
		JOIN equipment e ON e.id = br.equipment_id
		JOIN equipment_categories c ON c.id = e.category_id
		WHERE br.created_at BETWEEN ? AND ?
		GROUP BY c.name ORDER BY count DESC`, from, to).Scan(&out.ByCategory).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (returned_at - borrowed_at)) / 86400), 0)
		FROM borrowing_requests
		WHERE returned_at IS NOT NULL AND borrowed_at IS NOT NULL
		AND created_at BETWEEN ? AND ?`, from, to).Scan(&out.AvgBorrowDays).Error
	return out, err
}

func (r *DBReportRepo) StudentAnalytics(from, to time.Time) (dto.StudentAnalytics, error) {
	var out dto.StudentAnalytics

	err := db.DB.Raw(`
		SELECT s.student_id,
		s.first_name || ' ' || s.last_name AS full_name,
		s.course,
		COUNT(DISTINCT t.id) AS ticket_count,
		COUNT(DISTINCT br.id) AS request_count,
		COUNT(DISTINCT t.id) + COUNT(DISTINCT br.id) AS total_activity
		FROM students s
		LEFT JOIN assistance_tickets t ON t.student_id = s.student_id AND t.created_at BETWEEN ? AND ?
		LEFT JOIN borrowing_requests br ON br.student_id = s.student_id AND br.created_at BETWEEN ? AND ?
		GROUP BY s.student_id, s.first_name, s.last_name, s.course
		HAVING COUNT(DISTINCT t.id) + COUNT(DISTINCT br.id) > 0
		ORDER BY total_activity DESC
		LIMIT 10`, from, to, from, to).Scan(&out.MostActive).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT s.course,
		COUNT(DISTINCT s.student_id) AS student_count,
		COUNT(DISTINCT t.id) AS ticket_count,
		COUNT(DISTINCT br.id) AS request_count
		FROM students s
		LEFT JOIN assistance_tickets t ON t.student_id = s.student_id AND t.created_at BETWEEN ? AND ?
		LEFT JOIN borrowing_requests br ON br.student_id = s.student_id AND br.created_at BETWEEN ? AND ?
		GROUP BY s.course ORDER BY s.course`, from, to, from, to).Scan(&out.ByCourse).Error
	if err != nil {
		return out, err
	}

	err = db.DB.Raw(`
		SELECT s.year_of_study::text AS status, COUNT(DISTINCT t.id) + COUNT(DISTINCT br.id) AS count
		FROM students s
		LEFT JOIN assistance_tickets t ON t.student_id = s.student_id AND t.created_at BETWEEN ? AND ?
		LEFT JOIN borrowing_requests br ON br.student_id = s.student_id AND br.created_at BETWEEN ? AND ?
		GROUP BY s.year_of_study ORDER BY s.year_of_study`, from, to, from, to).Scan(&out.ByYear).Error
	return out, err
}

func (r *DBReportRepo) DashboardCounts() (dto.DashboardCounts, error) {
	var counts dto.DashboardCounts
	err := db.DB.Raw(`
		SELECT
		(SELECT COUNT(*) FROM assistance_tickets WHERE status = 'pending') AS pending_tickets,
		(SELECT COUNT(*) FROM assistance_tickets WHERE status IN ('assigned', 'in_progress')) AS in_progress_tickets,
		(SELECT COUNT(*) FROM borrowing_requests WHERE status = 'pending') AS pending_borrowings,
		(SELECT COUNT(*) FROM borrowing_requests WHERE status = 'active') AS active_borrowings,
		(SELECT COUNT(*) FROM borrowing_requests WHERE status = 'overdue') AS overdue_items,
		(SELECT COALESCE(SUM(quantity_available), 0) FROM equipment WHERE status = 'available') AS equipment_in_stock,
		(SELECT COUNT(*) FROM (
			SELECT id FROM assistance_feedback WHERE created_at > NOW() - INTERVAL '7 days'
			UNION ALL
			SELECT id FROM borrowing_feedback WHERE created_at > NOW() - INTERVAL '7 days'
		) recent) AS recent_feedback`).Scan(&counts).Error
	return counts, err
}
