package main

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// streamOrder is the fixed set of streams the quiz scores against.
// Its order is the tie-break order for recommendations: when several
// streams share the maximum score, the earliest one here wins.
var streamOrder = []string{"engineering", "medical", "arts", "commerce", "technology"}

// scoreAnswers sums submitted answer values into per-stream totals.
// Every known stream starts at 0; answers for unknown categories are
// dropped silently. Values are taken as-is, without range validation.
func scoreAnswers(answers []AnswerInput) map[string]int {
	totals := make(map[string]int, len(streamOrder))
	for _, s := range streamOrder {
		totals[s] = 0
	}
	for _, a := range answers {
		cat := stringsLower(a.Category)
		if _, ok := totals[cat]; ok {
			totals[cat] += a.Answer
		}
	}
	return totals
}

// recommendStream picks the stream with the highest total, walking
// streamOrder so ties resolve deterministically (all-zero input always
// yields "engineering").
func recommendStream(totals map[string]int) string {
	best := streamOrder[0]
	bestScore := totals[best]
	for _, s := range streamOrder[1:] {
		if totals[s] > bestScore {
			best = s
			bestScore = totals[s]
		}
	}
	return best
}

// recordSubmission bumps the caller's profile after a scored quiz.
// The insert-then-update pair under ON CONFLICT DO NOTHING keeps
// get-or-create atomic: two racing first submissions end up with a
// single row and both increments applied.
func recordSubmission(tx *gorm.DB, userID uint, stream string) error {
	profile := UserProfile{UserID: userID, InterestsRaw: "[]", CreatedAt: time.Now()}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&profile).Error; err != nil {
		return err
	}
	return tx.Model(&UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"completed_quizzes": gorm.Expr("completed_quizzes + 1"),
			"preferred_stream":  stream,
		}).Error
}

// ensureProfile is the read-side get-or-create used by the dashboard.
func ensureProfile(db *gorm.DB, userID uint) (UserProfile, error) {
	profile := UserProfile{UserID: userID, InterestsRaw: "[]", CreatedAt: time.Now()}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&profile).Error; err != nil {
		return UserProfile{}, err
	}
	var out UserProfile
	err := db.First(&out, "user_id = ?", userID).Error
	return out, err
}

func jsonObject(v map[string]int) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func jsonArrayRaw(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}
