package llm

import (
	"fmt"
	"strings"
)

// BuildMealPrompt creates the nutrition analysis instruction for a meal photo
func BuildMealPrompt(restrictions []string) string {
	restrictionsText := ""
	if len(restrictions) > 0 {
		restrictionsText = "\nUser dietary restrictions: " + strings.Join(restrictions, ", ") + "\n"
	}

	return fmt.Sprintf(`You are a nutritionist specialized in food analysis. Analyze this food photo with MAXIMUM PRECISION and provide DETAILED nutrition information.

CRITICAL INSTRUCTIONS:
1. Identify ALL foods visible on the plate
2. Estimate the portion size of each food (in grams or ml)
3. Compute TOTAL calories by adding up ALL identified foods
4. Compute protein, carbs and fats for EACH food and add them up
5. Be PRECISE - use real nutrition tables as reference
6. If sauces, oils or dressings are visible, INCLUDE them in the calories
7. Consider the preparation method (fried, grilled, boiled) when computing calories
%s
EXAMPLE OF A CORRECT ANALYSIS:
- White rice (150g) = 195 kcal, 4g protein, 43g carbs, 0.5g fats
- Grilled chicken (120g) = 198 kcal, 36g protein, 0g carbs, 4g fats
- Beans (100g) = 77 kcal, 5g protein, 14g carbs, 0.5g fats
- Salad with olive oil (80g) = 45 kcal, 1g protein, 3g carbs, 4g fats
TOTAL: 515 kcal, 46g protein, 60g carbs, 9g fats

Reply ONLY with valid JSON in exactly this shape:
{
  "foodName": "descriptive name of the whole dish",
  "calories": total_integer,
  "protein": total_integer_grams,
  "carbs": total_integer_grams,
  "fats": total_integer_grams,
  "ingredients": ["food1 (portion)", "food2 (portion)", "food3 (portion)"],
  "portionSize": "detailed description of the estimated total portion",
  "breakdown": [
    {
      "item": "food name",
      "portion": "estimated amount",
      "calories": number,
      "protein": number,
      "carbs": number,
      "fats": number
    }
  ]
}

IMPORTANT:
- Be GENEROUS with calorie estimates (overestimating is better than underestimating)
- Account for "hidden" ingredients such as cooking oil, butter and sugar
- If unsure about a portion, use standard average portions
- ALWAYS give realistic numbers based on real nutrition tables`, restrictionsText)
}
