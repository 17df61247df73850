package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CollegeDTO struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Website     string   `json:"website"`
	CollegeType string   `json:"college_type"`
	Fees        string   `json:"fees"`
	Facilities  []string `json:"facilities"`
	CutoffMarks string   `json:"cutoff_marks"`
}

type CareerDTO struct {
	ID              uint     `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Demand          int      `json:"demand"`
	SkillsRequired  []string `json:"skills_required"`
	SalaryRange     string   `json:"salary_range"`
	GrowthProspects string   `json:"growth_prospects"`
}

func collegeDTO(c College) CollegeDTO {
	out := CollegeDTO{
		ID:          c.ID,
		Name:        c.Name,
		Location:    c.Location,
		Website:     c.Website,
		CollegeType: c.CollegeType,
		Fees:        c.Fees,
		Facilities:  []string{},
		CutoffMarks: c.CutoffMarks,
	}
	_ = json.Unmarshal([]byte(c.FacilitiesRaw), &out.Facilities)
	return out
}

func careerDTO(c Career) CareerDTO {
	out := CareerDTO{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Demand:          c.Demand,
		SkillsRequired:  []string{},
		SalaryRange:     c.SalaryRange,
		GrowthProspects: c.GrowthProspects,
	}
	_ = json.Unmarshal([]byte(c.SkillsRaw), &out.SkillsRequired)
	return out
}

// GET /colleges?type=&search=
func ListColleges(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&College{})

		if t := strings.TrimSpace(c.Query("type")); t != "" {
			q = q.Where("LOWER(college_type) LIKE ?", "%"+strings.ToLower(t)+"%")
		}
		if s := strings.TrimSpace(c.Query("search")); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			q = q.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", like, like)
		}

		var colleges []College
		if err := q.Order("id").Find(&colleges).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		out := make([]CollegeDTO, 0, len(colleges))
		for _, col := range colleges {
			out = append(out, collegeDTO(col))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /colleges/government
func GovernmentColleges(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var colleges []College
		if err := db.Where("LOWER(college_type) = ?", "government").
			Order("id").Find(&colleges).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		out := make([]CollegeDTO, 0, len(colleges))
		for _, col := range colleges {
			out = append(out, collegeDTO(col))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /careers?category=
// The category filter matches career titles, not a category column;
// that mirrors how the frontend links streams to careers.
func ListCareers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&Career{})
		if cat := strings.TrimSpace(c.Query("category")); cat != "" {
			q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(cat)+"%")
		}

		var careers []Career
		if err := q.Order("id").Find(&careers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		out := make([]CareerDTO, 0, len(careers))
		for _, car := range careers {
			out = append(out, careerDTO(car))
		}
		c.JSON(http.StatusOK, out)
	}
}
