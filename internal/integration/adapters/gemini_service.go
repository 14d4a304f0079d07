// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/goaltracker/backend/internal/application/adapter"
	"github.com/goaltracker/backend/internal/domain/entity"
)

// GeminiService implements the adapter.RecommenderService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Recommend asks Gemini for three goal suggestions tailored to the profile.
func (s *GeminiService) Recommend(ctx context.Context, profile *entity.OnboardingProfile) ([]*adapter.RecommendationDraft, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(profile)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	drafts, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return drafts, nil
}

// buildPrompt creates the recommendation prompt from the questionnaire answers.
func (s *GeminiService) buildPrompt(p *entity.OnboardingProfile) string {
	var sb strings.Builder

	sb.WriteString(`As a fitness and wellness expert, analyze this user profile and generate exactly 3 personalized, actionable fitness/wellness goals. Format the response as JSON with the following structure for each goal:

{
  "recommendations": [
    {
      "title": "Goal Title",
      "category": "fitness|nutrition|mental_health|productivity|sleep|other",
      "description": "Brief description of the goal",
      "plan": "Specific actionable plan",
      "reasoning": "Why this goal fits the user's profile"
    }
  ]
}

User Profile:
`)

	sb.WriteString(fmt.Sprintf("- Primary Goals: %s\n", joinOrDefault(p.Goals, "General wellness")))
	sb.WriteString(fmt.Sprintf("- Goal Importance (1-5): %d\n", p.GoalImportance))
	sb.WriteString(fmt.Sprintf("- Success Definition: %s\n", orDefault(p.SuccessDefinition, "Not specified")))
	sb.WriteString(fmt.Sprintf("- Sleep: %g hours, Quality: %s, Consistent: %t\n", p.SleepHours, p.SleepQuality, p.ConsistentSleep))
	sb.WriteString(fmt.Sprintf("- Eating Habits: %s\n", p.EatingHabits))
	sb.WriteString(fmt.Sprintf("- Water Intake: %d glasses/day\n", p.WaterIntake))
	sb.WriteString(fmt.Sprintf("- Physical Activity: %s\n", p.PhysicalActivity))
	sb.WriteString(fmt.Sprintf("- Stress Level: %s\n", p.StressLevel))
	sb.WriteString(fmt.Sprintf("- Relaxation Frequency: %s\n", p.RelaxationFrequency))
	sb.WriteString(fmt.Sprintf("- Mindfulness Practice: %s\n", yesNo(p.MindfulnessPractice)))
	sb.WriteString(fmt.Sprintf("- Screen Time: %g hours/day\n", p.ScreenTime))
	sb.WriteString(fmt.Sprintf("- Mindless Scrolling: %s\n", yesNo(p.MindlessScrolling)))
	sb.WriteString(fmt.Sprintf("- Existing Good Habits: %s\n", joinOrDefault(p.ExistingGoodHabits, "None specified")))
	sb.WriteString(fmt.Sprintf("- Habits to Break: %s\n", joinOrDefault(p.HabitsToBreak, "None specified")))
	sb.WriteString(fmt.Sprintf("- Main Obstacles: %s\n", joinOrDefault(p.Obstacles, "None specified")))
	sb.WriteString(fmt.Sprintf("- Discipline Level (1-5): %d\n", p.DisciplineLevel))
	sb.WriteString(fmt.Sprintf("- Peak Productivity: %s\n", p.PeakProductivityTime))
	sb.WriteString(fmt.Sprintf("- Reminder Preference: %s\n", p.ReminderPreference))
	sb.WriteString(fmt.Sprintf("- Habit Approach: %s\n", p.HabitApproach))
	sb.WriteString(fmt.Sprintf("- Daily Time Commitment: %s\n", p.DailyTimeCommitment))
	sb.WriteString(fmt.Sprintf("- Motivation Factors: %s\n", joinOrDefault(p.MotivationFactors, "None specified")))
	sb.WriteString(fmt.Sprintf("- Age Range: %s\n", orDefault(p.AgeRange, "Not specified")))
	sb.WriteString(fmt.Sprintf("- Gender: %s\n", orDefault(p.Gender, "Not specified")))
	sb.WriteString(fmt.Sprintf("- Occupation: %s\n", orDefault(p.Occupation, "Not specified")))

	sb.WriteString(`
Please provide 3 specific, personalized recommendations that:
1. Address the user's stated goals and challenges
2. Are realistic given their time commitment and discipline level
3. Build on their existing good habits
4. Help overcome their stated obstacles
5. Match their preferred approach and productivity time

Focus on creating SMART goals that are specific, measurable, achievable, relevant, and time-bound.`)

	return sb.String()
}

// geminiRecommendation represents one suggestion in the raw Gemini response.
type geminiRecommendation struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Plan        string `json:"plan"`
	Reasoning   string `json:"reasoning"`
}

// geminiResponse represents the expected JSON envelope.
type geminiResponse struct {
	Recommendations []geminiRecommendation `json:"recommendations"`
}

// parseResponse extracts recommendation drafts from the Gemini response,
// trying JSON first and falling back to labeled plain text.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]*adapter.RecommendationDraft, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent += string(text)
		}
	}
	if textContent == "" {
		return nil, fmt.Errorf("no text content in gemini response")
	}

	if drafts := parseJSONRecommendations(textContent); len(drafts) > 0 {
		return drafts, nil
	}

	drafts := parseLabeledRecommendations(textContent)
	if len(drafts) == 0 {
		return nil, fmt.Errorf("could not parse recommendations from response")
	}
	return drafts, nil
}

// parseJSONRecommendations tries to decode the JSON envelope, tolerating
// surrounding prose around the JSON object.
func parseJSONRecommendations(text string) []*adapter.RecommendationDraft {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil
	}

	var envelope geminiResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &envelope); err != nil {
		return nil
	}

	drafts := make([]*adapter.RecommendationDraft, 0, len(envelope.Recommendations))
	for _, rec := range envelope.Recommendations {
		if rec.Title == "" {
			continue
		}
		drafts = append(drafts, toDraft(rec))
	}
	return drafts
}

// parseLabeledRecommendations scans line-oriented "Title:", "Category:" etc.
// output, used when the model ignores the JSON format instruction.
func parseLabeledRecommendations(text string) []*adapter.RecommendationDraft {
	var (
		drafts  []*adapter.RecommendationDraft
		current geminiRecommendation
	)

	flush := func() {
		if current.Title != "" {
			drafts = append(drafts, toDraft(current))
		}
		current = geminiRecommendation{}
	}

	for _, line := range strings.Split(text, "\n") {
		label, value, found := strings.Cut(strings.TrimSpace(line), ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(label)) {
		case "title":
			flush()
			current.Title = value
		case "category":
			current.Category = strings.ToLower(value)
		case "description":
			current.Description = value
		case "plan":
			current.Plan = value
		case "reasoning":
			current.Reasoning = value
		}
	}
	flush()

	return drafts
}

// toDraft converts a raw suggestion, mapping unknown categories to "other".
func toDraft(rec geminiRecommendation) *adapter.RecommendationDraft {
	category := entity.GoalCategory(rec.Category)
	if !entity.ValidCategory(category) {
		category = entity.CategoryOther
	}
	return &adapter.RecommendationDraft{
		Title:       rec.Title,
		Category:    category,
		Description: rec.Description,
		Plan:        rec.Plan,
		Reasoning:   rec.Reasoning,
	}
}

func joinOrDefault(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
