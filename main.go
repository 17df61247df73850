package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	cfg := LoadConfig()

	// 1) DB
	db, err := OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// 2) Seed (if empty)
	if isEmpty, _ := IsQuestionTableEmpty(db); isEmpty {
		if err := SeedDefaultQuestions(db); err != nil {
			log.Fatalf("seed questions: %v", err)
		}
		log.Printf("Seeded %d default quiz questions", len(defaultQuestions))
	}
	if isEmpty, _ := IsCatalogEmpty(db); isEmpty {
		if _, err := os.Stat(cfg.SeedPath); err == nil {
			if err := SeedCatalogFromJSON(db, cfg.SeedPath); err != nil {
				log.Fatalf("seed catalog: %v", err)
			}
			log.Printf("Seeded colleges/careers from %s", cfg.SeedPath)
		} else {
			log.Printf("No catalog seed file at %s; directory endpoints start empty", cfg.SeedPath)
		}
	}

	// 3) Router
	r := gin.Default()

	// --- CORS: allow the deployed frontend + any localhost:port ---
	frontendOrigin := getenv("FRONTEND_ORIGIN", "https://careerpath.io")
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if origin == frontendOrigin {
				return true
			}
			// allow any http://localhost:PORT during development
			return strings.HasPrefix(origin, "http://localhost:")
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(requestID())

	// Optional health check
	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	registerRoutes(r, db, cfg)

	// --- Server ---
	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func registerRoutes(r *gin.Engine, db *gorm.DB, cfg Config) {
	// Accounts
	r.POST("/login", Login(db, cfg))
	r.POST("/createu", CreateUser(db, cfg))
	r.GET("/verify-token", VerifyToken(db, cfg))

	// Quiz
	r.GET("/quiz/home", QuizHome(db))
	r.GET("/quiz/questions", ListQuestions(db))

	authed := r.Group("/", RequireAuth(db, cfg.JWTSecret))
	authed.POST("/quiz/submit", SubmitQuiz(db))
	authed.GET("/quiz/results", MyResults(db))
	authed.GET("/dashboard", Dashboard(db))

	// Directory
	r.GET("/colleges", ListColleges(db))
	r.GET("/colleges/government", GovernmentColleges(db))
	r.GET("/careers", ListCareers(db))
}

// requestID tags every request so log lines can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-Id", id)
		c.Next()
	}
}
