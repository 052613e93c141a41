package db

import (
	"fmt"
	"log"

	"github.com/hwlab/portal-go/config"
	"github.com/hwlab/portal-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE admin_role AS ENUM ('super_admin', 'lab_technician'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE equipment_status AS ENUM ('available', 'maintenance', 'damaged', 'retired'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE ticket_status AS ENUM ('pending', 'assigned', 'in_progress', 'resolved', 'cancelled'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE ticket_priority AS ENUM ('low', 'medium', 'high', 'urgent'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE borrowing_status AS ENUM ('pending', 'approved', 'rejected', 'active', 'returned', 'overdue'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE satisfaction_level AS ENUM ('very_dissatisfied', 'dissatisfied', 'neutral', 'satisfied', 'very_satisfied'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	// TranslateError maps unique violations to gorm.ErrDuplicatedKey, which
	// the number generators rely on for collision retries.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	Migrate()

	log.Println("Database connected and migrated")
}

// Migrate brings the connected database up to the current schema. Views
// are dropped first so AutoMigrate can alter columns they depend on.
func Migrate() {
	dropViews()

	// Create enums
	createEnums()

	if err := DB.AutoMigrate(
		&models.Student{},
		&models.Admin{},
		&models.EquipmentCategory{},
		&models.Equipment{},
		&models.AssistanceType{},
		&models.AssistanceTicket{},
		&models.TicketComment{},
		&models.BorrowingRequest{},
		&models.AssistanceFeedback{},
		&models.BorrowingFeedback{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	createViews()
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

func dropViews() {
	views := []string{
		"assistance_feedback_summary",
		"borrowing_feedback_summary",
	}

	for _, view := range views {
		if err := DB.Exec(fmt.Sprintf("DROP VIEW IF EXISTS %s CASCADE", view)).Error; err != nil {
			log.Printf("Failed to drop view %s: %v", view, err)
		}
	}
}

func createViews() {
	views := []string{
		`CREATE OR REPLACE VIEW assistance_feedback_summary AS
		SELECT
		af.id,
		af.ticket_id,
		t.ticket_number,
		t.title,
		t.phone_request,
		af.rating,
		af.satisfaction,
		af.response_time_rating,
		af.service_quality_rating,
		af.staff_helpfulness_rating,
		af.comment,
		af.would_recommend,
		af.created_at AS feedback_date,
		s.first_name || ' ' || s.last_name AS student_name,
		s.course,
		a.full_name AS assigned_to_name,
		at.name AS assistance_type
		FROM assistance_feedback af
		JOIN assistance_tickets t ON t.id = af.ticket_id
		JOIN students s ON s.student_id = af.student_id
		LEFT JOIN admins a ON a.id = t.assigned_to
		LEFT JOIN assistance_types at ON at.id = t.assistance_type_id;`,

		`CREATE OR REPLACE VIEW borrowing_feedback_summary AS
		SELECT
		bf.id,
		bf.request_id,
		br.request_number,
		br.phone_request,
		e.name AS equipment_name,
		e.model,
		bf.rating,
		bf.satisfaction,
		bf.equipment_condition_rating,
		bf.service_quality_rating,
		bf.process_efficiency_rating,
		bf.comment,
		bf.equipment_issues,
		bf.would_recommend,
		bf.created_at AS feedback_date,
		s.first_name || ' ' || s.last_name AS student_name,
		s.course,
		a.full_name AS approved_by_name
		FROM borrowing_feedback bf
		JOIN borrowing_requests br ON br.id = bf.request_id
		JOIN equipment e ON e.id = br.equipment_id
		JOIN students s ON s.student_id = bf.student_id
		LEFT JOIN admins a ON a.id = br.approved_by;`,
	}

	for _, view := range views {
		if err := DB.Exec(view).Error; err != nil {
			log.Printf("Failed to create view, error: %v", err)
		}
	}
}
