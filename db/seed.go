package db

import (
	"log"
	"os"

	"github.com/hwlab/portal-go/models"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
)

type seedCatalog struct {
	Admins []struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		FullName string `yaml:"full_name"`
		Role     string `yaml:"role"`
	} `yaml:"admins"`
	Students []struct {
		StudentID   string `yaml:"student_id"`
		Email       string `yaml:"email"`
		FirstName   string `yaml:"first_name"`
		LastName    string `yaml:"last_name"`
		Course      string `yaml:"course"`
		YearOfStudy int    `yaml:"year_of_study"`
	} `yaml:"students"`
	AssistanceTypes []struct {
		Name              string `yaml:"name"`
		Description       string `yaml:"description"`
		EstimatedDuration int    `yaml:"estimated_duration"`
	} `yaml:"assistance_types"`
	Categories []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Equipment   []struct {
			Name         string `yaml:"name"`
			Model        string `yaml:"model"`
			SerialNumber string `yaml:"serial_number"`
			Quantity     int    `yaml:"quantity"`
		} `yaml:"equipment"`
	} `yaml:"categories"`
}

// Seed loads the starter catalog when the database is empty. Re-running
// against a populated database is a no-op.
func Seed(path string) error {
	var count int64
	if err := DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed skipped: database already populated")
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var catalog seedCatalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return err
	}

	for _, a := range catalog.Admins {
		hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.Admin{
			Username: a.Username,
			Email:    a.Email,
			Password: string(hashed),
			FullName: a.FullName,
			Role:     models.AdminRole(a.Role),
		}
		if err := DB.Create(&admin).Error; err != nil {
			return err
		}
	}

	for _, s := range catalog.Students {
		student := models.Student{
			StudentID:   s.StudentID,
			Email:       s.Email,
			FirstName:   s.FirstName,
			LastName:    s.LastName,
			Course:      s.Course,
			YearOfStudy: s.YearOfStudy,
		}
		if err := DB.Create(&student).Error; err != nil {
			return err
		}
	}

	for _, t := range catalog.AssistanceTypes {
		at := models.AssistanceType{
			Name:              t.Name,
			Description:       t.Description,
			EstimatedDuration: t.EstimatedDuration,
		}
		if err := DB.Create(&at).Error; err != nil {
			return err
		}
	}

	for _, c := range catalog.Categories {
		category := models.EquipmentCategory{Name: c.Name, Description: c.Description}
		if err := DB.Create(&category).Error; err != nil {
			return err
		}
		for _, e := range c.Equipment {
			item := models.Equipment{
				CategoryID:        category.ID,
				Name:              e.Name,
				Model:             e.Model,
				SerialNumber:      e.SerialNumber,
				Status:            models.EquipmentStatusAvailable,
				QuantityAvailable: e.Quantity,
				TotalQuantity:     e.Quantity,
			}
			if err := DB.Create(&item).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Seed catalog imported")
	return nil
}
