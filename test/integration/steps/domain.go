package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/goaltracker/backend/internal/domain/entity"
	"github.com/goaltracker/backend/internal/integration/persistence/model"
)

// registerDomainSteps registers data seeding and database assertion steps.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a user exists with email "([^"]*)"$`, aUserExistsWithEmail)
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, aUserExistsWithEmailAndPassword)
	ctx.Step(`^I am logged in as "([^"]*)"$`, iAmLoggedInAs)
	ctx.Step(`^the user has completed onboarding$`, theUserHasCompletedOnboarding)
	ctx.Step(`^a password reset token exists for "([^"]*)"$`, aPasswordResetTokenExistsFor)

	ctx.Step(`^a goal exists with title "([^"]*)" in category "([^"]*)" targeting (\d+) "([^"]*)"$`, aGoalExists)
	ctx.Step(`^the goal is abandoned$`, theGoalIsAbandoned)
	ctx.Step(`^the goal has ([0-9.]+) progress recorded (\d+) days? ago$`, theGoalHasProgressRecorded)

	ctx.Step(`^a recommendation exists with title "([^"]*)" and status "([^"]*)"$`, aRecommendationExists)
	ctx.Step(`^a workout log exists for activity "([^"]*)" lasting (\d+) minutes$`, aWorkoutLogExists)

	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, theDbShouldContainObjectsInWithTheValues)
}

func aUserExistsWithEmail(ctx context.Context, email string) error {
	return aUserExistsWithEmailAndPassword(ctx, email, defaultPassword)
}

func aUserExistsWithEmailAndPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:              uuid.New(),
		Email:           email,
		Name:            "Test User",
		PasswordHash:    string(hash),
		Onboarded:       false,
		TermsAcceptedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := tc.db.DbConn.Create(user).Error; err != nil {
		return err
	}
	tc.vars["user_id"] = user.ID.String()
	return nil
}

// iAmLoggedInAs logs in through the API so the scenario holds real tokens.
// The user is created first if no seeding step did it already.
func iAmLoggedInAs(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var user model.UserModel
	err := tc.db.DbConn.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := aUserExistsWithEmailAndPassword(ctx, email, defaultPassword); err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else {
		tc.vars["user_id"] = user.ID.String()
	}

	body, err := json.Marshal(map[string]any{
		"email":    email,
		"password": defaultPassword,
	})
	if err != nil {
		return err
	}

	if err := tc.execute("POST", "/api/v1/auth/login", body); err != nil {
		return err
	}
	if tc.response.StatusCode != 200 {
		return fmt.Errorf("login failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var login struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &login); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}

	tc.accessToken = login.AccessToken
	tc.refreshToken = login.RefreshToken
	return nil
}

func theUserHasCompletedOnboarding(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	userID, err := tc.currentUserID()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	profile := &model.OnboardingProfileModel{
		ID:                   uuid.New(),
		UserID:               userID,
		Goals:                pq.StringArray{"Exercise more", "Sleep better"},
		GoalImportance:       4,
		SuccessDefinition:    "Feeling energized every day",
		SleepHours:           6,
		SleepQuality:         "Fair",
		ConsistentSleep:      false,
		EatingHabits:         "Average",
		WaterIntake:          4,
		PhysicalActivity:     "Rarely",
		StressLevel:          "High",
		RelaxationFrequency:  "Rarely",
		MindfulnessPractice:  false,
		ScreenTime:           6,
		MindlessScrolling:    true,
		ExistingGoodHabits:   pq.StringArray{"Morning walks"},
		HabitsToBreak:        pq.StringArray{"Late night snacking"},
		Obstacles:            pq.StringArray{"Lack of time"},
		DisciplineLevel:      3,
		PeakProductivityTime: "Morning",
		ReminderPreference:   "Push notifications",
		HabitApproach:        "Small steps",
		DailyTimeCommitment:  "15-30 minutes",
		MotivationFactors:    pq.StringArray{"Health", "Energy"},
		AgeRange:             "25-34",
		Gender:               "Prefer not to say",
		Occupation:           "Engineer",
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := tc.db.DbConn.Create(profile).Error; err != nil {
		return err
	}
	return tc.db.DbConn.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("onboarded", true).Error
}

// aPasswordResetTokenExistsFor plants a token straight into Redis the same
// way the forgot-password flow stores it.
func aPasswordResetTokenExistsFor(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var user model.UserModel
	if err := tc.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user '%s' not found: %w", email, err)
	}

	token := "test-reset-" + uuid.New().String()
	payload, err := json.Marshal(map[string]string{
		"user_id": user.ID.String(),
		"email":   email,
	})
	if err != nil {
		return err
	}

	if err := tc.redisClient.Set(ctx, "pwreset:"+token, payload, time.Hour).Err(); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	tc.resetToken = token
	return nil
}

func aGoalExists(ctx context.Context, title, category string, target int, unit string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	userID, err := tc.currentUserID()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	today := entity.NormalizeDay(now)
	goal := &model.GoalModel{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Category:    category,
		Specific:    "Targeted daily effort",
		Measurable:  fmt.Sprintf("%d %s total", target, unit),
		Achievable:  "Fits the current routine",
		Relevant:    "Supports overall wellness",
		StartDate:   today.AddDate(0, 0, -7),
		EndDate:     today.AddDate(0, 0, 23),
		TargetValue: float64(target),
		Unit:        unit,
		Status:      string(entity.StatusNotStarted),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := tc.db.DbConn.Create(goal).Error; err != nil {
		return err
	}
	tc.vars["goal_id"] = goal.ID.String()
	return nil
}

func theGoalIsAbandoned(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	goalID, ok := tc.vars["goal_id"]
	if !ok {
		return fmt.Errorf("no goal seeded yet")
	}
	return tc.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", goalID).
		Update("status", string(entity.StatusAbandoned)).Error
}

// theGoalHasProgressRecorded seeds one daily entry and keeps the goal's
// cumulative progress equal to the sum of its entries.
func theGoalHasProgressRecorded(ctx context.Context, value string, daysAgo int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	goalID, ok := tc.vars["goal_id"]
	if !ok {
		return fmt.Errorf("no goal seeded yet")
	}

	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid progress value '%s': %w", value, err)
	}

	userID, err := tc.currentUserID()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	entry := &model.ProgressEntryModel{
		ID:        uuid.New(),
		UserID:    userID,
		GoalID:    uuid.MustParse(goalID),
		Date:      entity.NormalizeDay(now.AddDate(0, 0, -daysAgo)),
		Value:     amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tc.db.DbConn.Create(entry).Error; err != nil {
		return err
	}

	return tc.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", goalID).
		Updates(map[string]any{
			"current_progress": gorm.Expr("current_progress + ?", amount),
			"status":           string(entity.StatusInProgress),
		}).Error
}

func aRecommendationExists(ctx context.Context, title, status string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	userID, err := tc.currentUserID()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	rec := &model.RecommendedGoalModel{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Category:    string(entity.CategoryFitness),
		Description: "A steady habit that compounds over time",
		Plan:        "Repeat the routine every day for a month",
		Reasoning:   "Matches the answers given during onboarding",
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := tc.db.DbConn.Create(rec).Error; err != nil {
		return err
	}
	tc.vars["recommendation_id"] = rec.ID.String()
	return nil
}

func aWorkoutLogExists(ctx context.Context, activity string, minutes int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	userID, err := tc.currentUserID()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	log := &model.WorkoutLogModel{
		ID:              uuid.New(),
		UserID:          userID,
		Activity:        activity,
		DurationMinutes: minutes,
		Calories:        minutes * 8,
		LoggedAt:        entity.NormalizeDay(now),
		CreatedAt:       now,
	}

	if err := tc.db.DbConn.Create(log).Error; err != nil {
		return err
	}
	tc.vars["workout_id"] = log.ID.String()
	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.countRows(quantity, table, nil)
}

func theDbShouldContainObjectsInWithTheValues(ctx context.Context, quantity int, table string, content *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var criteria map[string]any
	if err := json.Unmarshal([]byte(tc.substitute(content.Content)), &criteria); err != nil {
		return fmt.Errorf("invalid criteria JSON: %w", err)
	}
	return tc.countRows(quantity, table, criteria)
}

func (tc *TestContext) countRows(quantity int, table string, criteria map[string]any) error {
	target, ok := tc.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	sliceType := reflect.SliceOf(reflect.TypeOf(target).Elem())
	slicePtr := reflect.New(sliceType)

	query := tc.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(slicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// currentUserID resolves the user seeded or logged in earlier in the scenario.
func (tc *TestContext) currentUserID() (uuid.UUID, error) {
	raw, ok := tc.vars["user_id"]
	if !ok {
		return uuid.Nil, fmt.Errorf("no user seeded yet")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id '%s': %w", raw, err)
	}
	return id, nil
}
