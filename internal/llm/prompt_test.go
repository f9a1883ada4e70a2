package llm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rrens/fitsmart/internal/llm"
)

func TestBuildMealPrompt(t *testing.T) {
	prompt := llm.BuildMealPrompt(nil)

	mustContain := []string{
		"ALL foods visible",
		"fried, grilled, boiled",
		"GENEROUS",
		"cooking oil, butter and sugar",
		"TOTAL: 515 kcal, 46g protein, 60g carbs, 9g fats",
		`"foodName"`,
		`"portionSize"`,
		`"breakdown"`,
	}

	for _, s := range mustContain {
		assert.Contains(t, prompt, s)
	}
	assert.NotContains(t, prompt, "dietary restrictions")
}

func TestBuildMealPrompt_WithRestrictions(t *testing.T) {
	prompt := llm.BuildMealPrompt([]string{"vegan", "gluten"})

	assert.Contains(t, prompt, "User dietary restrictions: vegan, gluten")
	assert.Less(t, strings.Index(prompt, "vegan, gluten"), strings.Index(prompt, "EXAMPLE OF A CORRECT ANALYSIS"))
}

func TestVisionRequest_DataURI(t *testing.T) {
	req := llm.VisionRequest{ImageBase64: "AAAA", MIMEType: "image/png"}
	assert.Equal(t, "data:image/png;base64,AAAA", req.DataURI())
}
