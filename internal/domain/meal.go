package domain

// MealAnalysisRequest is the body of a meal photo analysis
type MealAnalysisRequest struct {
	Image               string   `json:"image" validate:"required"`
	DietaryRestrictions []string `json:"dietaryRestrictions" validate:"omitempty,dive,max=50"`
	Provider            string   `json:"provider,omitempty" validate:"omitempty,oneof=openai anthropic ollama gemini vertex"`
	Model               string   `json:"model,omitempty" validate:"max=100"`
}

// BreakdownItem is the per-item estimate of an analyzed meal
type BreakdownItem struct {
	Item     string  `json:"item"`
	Portion  string  `json:"portion"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// MealAnalysisResult is the validated nutrition estimate of a meal photo
type MealAnalysisResult struct {
	FoodName    string          `json:"foodName"`
	Calories    int             `json:"calories"`
	Protein     int             `json:"protein"`
	Carbs       int             `json:"carbs"`
	Fats        int             `json:"fats"`
	Ingredients []string        `json:"ingredients"`
	PortionSize string          `json:"portionSize"`
	Breakdown   []BreakdownItem `json:"breakdown"`
}

// MealEntry is a meal logged for the current day
type MealEntry struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Calories     int    `json:"calories"`
	Protein      int    `json:"protein"`
	Carbs        int    `json:"carbs"`
	Fats         int    `json:"fats"`
	Time         string `json:"time"`
	ImageURL     string `json:"imageUrl,omitempty"`
	AnalyzedByAI bool   `json:"analyzedByAI"`
}

// MealCreate represents a manually entered meal
type MealCreate struct {
	Name     string `json:"name" validate:"required,max=200"`
	Calories int    `json:"calories" validate:"gte=0,lte=20000"`
	Protein  int    `json:"protein" validate:"gte=0,lte=2000"`
	Carbs    int    `json:"carbs" validate:"gte=0,lte=2000"`
	Fats     int    `json:"fats" validate:"gte=0,lte=2000"`
}
