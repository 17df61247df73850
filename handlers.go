package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

/*** DTOs shared across handlers ***/

type CredentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AnswerInput struct {
	Category string `json:"category"`
	Answer   int    `json:"answer"`
}

type SubmitQuizReq struct {
	Answers []AnswerInput `json:"answers"`
}

type QuizResultDTO struct {
	ID                uint           `json:"id"`
	UserID            uint           `json:"user_id"`
	Username          string         `json:"username"`
	Scores            map[string]int `json:"scores"`
	Answers           []AnswerInput  `json:"answers"`
	RecommendedStream string         `json:"recommended_stream"`
	CreatedAt         time.Time      `json:"created_at"`
}

func resultDTO(r QuizResult, username string) QuizResultDTO {
	dto := QuizResultDTO{
		ID:                r.ID,
		UserID:            r.UserID,
		Username:          username,
		RecommendedStream: r.RecommendedStream,
		CreatedAt:         r.CreatedAt,
	}
	dto.Scores = map[string]int{}
	_ = json.Unmarshal([]byte(r.ScoresRaw), &dto.Scores)
	dto.Answers = []AnswerInput{}
	_ = json.Unmarshal([]byte(r.AnswersRaw), &dto.Answers)
	return dto
}

/*** Accounts ***/

func Login(db *gorm.DB, cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsReq
		if err := c.BindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
			return
		}

		var u User
		if err := db.First(&u, "username = ?", req.Username).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "db"})
			return
		}

		if err := checkPassword(u.PasswordHash, req.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Wrong password"})
			return
		}

		token, err := generateToken(cfg.JWTSecret, u, cfg.TokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Successfully logged in",
			"token":    token,
			"username": u.Username,
			"user_id":  u.ID,
		})
	}
}

func CreateUser(db *gorm.DB, cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsReq
		if err := c.BindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
			return
		}
		if len(req.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters long"})
			return
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "hash"})
			return
		}

		u := User{Username: req.Username, PasswordHash: hash}
		if err := db.Create(&u).Error; err != nil {
			if isUniqueViolation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "db"})
			return
		}

		token, err := generateToken(cfg.JWTSecret, u, cfg.TokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "User created successfully",
			"token":    token,
			"username": u.Username,
			"user_id":  u.ID,
		})
	}
}

func VerifyToken(db *gorm.DB, cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := lookupUser(db, cfg.JWTSecret, c.Request)
		if u == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"valid":    true,
			"username": u.Username,
			"user_id":  u.ID,
		})
	}
}

/*** Quiz ***/

func QuizHome(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var total int64
		_ = db.Model(&QuizQuestion{}).Count(&total).Error
		c.JSON(http.StatusOK, gin.H{
			"title":           "Career Guidance Quiz",
			"subtitle":        "Discover your interests and aptitudes to make informed decisions about your academic future.",
			"total_questions": total,
			"estimated_time":  "15-20 minutes",
			"guidelines": []string{
				"Answer honestly based on your interests",
				"No right or wrong answers",
				"Scale of 1-5 for each question",
				"Review answers before submitting",
			},
		})
	}
}

func ListQuestions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		empty, err := IsQuestionTableEmpty(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if empty {
			if err := SeedDefaultQuestions(db); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "seed"})
				return
			}
		}
		var qs []QuizQuestion
		if err := db.Order("id").Find(&qs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, qs)
	}
}

func SubmitQuiz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication required"})
			return
		}

		var req SubmitQuizReq
		if err := c.BindJSON(&req); err != nil || len(req.Answers) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "No answers provided"})
			return
		}

		totals := scoreAnswers(req.Answers)
		recommended := recommendStream(totals)

		result := QuizResult{
			UserID:            u.ID,
			ScoresRaw:         jsonObject(totals),
			AnswersRaw:        jsonArrayRaw(req.Answers),
			RecommendedStream: recommended,
			CreatedAt:         time.Now(),
		}

		// Result row and profile update land together or not at all.
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&result).Error; err != nil {
				return err
			}
			return recordSubmission(tx, u.ID, recommended)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		c.JSON(http.StatusCreated, resultDTO(result, u.Username))
	}
}

func MyResults(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication required"})
			return
		}

		var results []QuizResult
		if err := db.Where("user_id = ?", u.ID).
			Order("created_at DESC, id DESC").
			Find(&results).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		out := make([]QuizResultDTO, 0, len(results))
		for _, r := range results {
			out = append(out, resultDTO(r, u.Username))
		}
		c.JSON(http.StatusOK, out)
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// glebarez/sqlite reports constraint failures as plain errors.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
