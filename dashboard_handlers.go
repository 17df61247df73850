package main

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardProfile struct {
	PreferredStream  string   `json:"preferred_stream"`
	CompletedQuizzes int      `json:"completed_quizzes"`
	Interests        []string `json:"interests"`
}

type DashboardResponse struct {
	Username        string           `json:"username"`
	Profile         DashboardProfile `json:"profile"`
	RecentResults   []QuizResultDTO  `json:"recent_results"`
	Recommendations gin.H            `json:"recommendations"`
}

// GET /dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication required"})
			return
		}

		profile, err := ensureProfile(db, u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		var recent []QuizResult
		if err := db.Where("user_id = ?", u.ID).
			Order("created_at DESC, id DESC").
			Limit(3).
			Find(&recent).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		recentDTOs := make([]QuizResultDTO, 0, len(recent))
		for _, r := range recent {
			recentDTOs = append(recentDTOs, resultDTO(r, u.Username))
		}

		var collegesCount, careersCount int64
		if err := db.Model(&College{}).Count(&collegesCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if err := db.Model(&Career{}).Count(&careersCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		interests := []string{}
		_ = json.Unmarshal([]byte(profile.InterestsRaw), &interests)

		c.JSON(http.StatusOK, DashboardResponse{
			Username: u.Username,
			Profile: DashboardProfile{
				PreferredStream:  profile.PreferredStream,
				CompletedQuizzes: profile.CompletedQuizzes,
				Interests:        interests,
			},
			RecentResults: recentDTOs,
			Recommendations: gin.H{
				"colleges_count": collegesCount,
				"careers_count":  careersCount,
			},
		})
	}
}
