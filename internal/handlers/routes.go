package handlers

import (
	"net/http"
	"time"

	"learnquest/internal/security"
)

// writeRequestsPerMinute bounds how fast one client may mutate records
const writeRequestsPerMinute = 120

// NewRouter wires every API route onto a method-pattern ServeMux and
// wraps it in the shared middleware
func NewRouter(
	children *ChildHandler,
	levels *LevelHandler,
	questions *QuestionHandler,
	activities *ActivityHandler,
	progress *ProgressHandler,
	dashboards *DashboardHandler,
	reports *ReportHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", Healthz)

	// Child profiles
	mux.HandleFunc("GET /api/children", children.ListChildren)
	mux.HandleFunc("POST /api/children", children.CreateChild)
	mux.HandleFunc("GET /api/children/{id}", children.GetChild)
	mux.HandleFunc("PUT /api/children/{id}", children.UpdateChild)
	mux.HandleFunc("DELETE /api/children/{id}", children.DeleteChild)

	// Level catalogue and question sessions
	mux.HandleFunc("GET /api/levels", levels.ListLevels)
	mux.HandleFunc("GET /api/levels/{id}", levels.GetLevel)
	mux.HandleFunc("POST /api/levels/{id}/lock", levels.SetLock)
	mux.HandleFunc("GET /api/levels/{id}/questions", levels.LevelQuestions)
	mux.HandleFunc("POST /api/answers/check", questions.CheckAnswer)

	// Completed sessions
	mux.HandleFunc("POST /api/activities", activities.RecordActivity)
	mux.HandleFunc("DELETE /api/activities/{id}", activities.DeleteActivity)
	mux.HandleFunc("GET /api/children/{id}/activities", activities.ChildActivities)

	// Skill mastery and the parent dashboard
	mux.HandleFunc("POST /api/progress", progress.RecordProgress)
	mux.HandleFunc("GET /api/children/{id}/progress", progress.ChildProgress)
	mux.HandleFunc("GET /api/children/{id}/dashboard", dashboards.ChildDashboard)
	mux.HandleFunc("POST /api/children/{id}/report", reports.SendWeeklyReport)

	limiter := security.NewRateLimiter(writeRequestsPerMinute, time.Minute)
	return CORS(Logging(RateLimitWrites(limiter, mux)))
}
