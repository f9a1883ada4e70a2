package nutrition

import "github.com/Rrens/fitsmart/internal/domain"

type diet int

const (
	dietOmnivore diet = iota
	dietVegetarian
	dietVegan
)

type dietFlags struct {
	diet        diet
	lactoseFree bool
	glutenFree  bool
}

func dietFlagsFor(answers domain.OnboardingAnswers) dietFlags {
	f := dietFlags{
		lactoseFree: answers.HasRestriction(domain.RestrictionLactose),
		glutenFree:  answers.HasRestriction(domain.RestrictionGluten),
	}
	switch {
	case answers.HasRestriction(domain.RestrictionVegan):
		f.diet = dietVegan
	case answers.HasRestriction(domain.RestrictionVegetarian):
		f.diet = dietVegetarian
	}
	return f
}

// food is a suggestion with optional substitutes for lactose or gluten free diets
type food struct {
	name        string
	lactoseFree string
	glutenFree  string
}

func (f food) forFlags(flags dietFlags) string {
	if flags.lactoseFree && f.lactoseFree != "" {
		return f.lactoseFree
	}
	if flags.glutenFree && f.glutenFree != "" {
		return f.glutenFree
	}
	return f.name
}

var (
	bread = food{name: "2 slices of whole-grain bread", glutenFree: "2 tapioca crepes"}
	rice  = food{name: "150g rice", glutenFree: "150g brown rice"}
	salad = food{name: "Green salad, as much as you like"}
	beans = food{name: "100g beans"}

	dairySnack = []food{
		{name: "Plain yogurt", lactoseFree: "Lactose-free yogurt"},
		{name: "1 fruit"},
		{name: "30g nuts (cashews, almonds)"},
	}
	dairyLateSnack = []food{
		{name: "Plain yogurt", lactoseFree: "Lactose-free yogurt"},
		{name: "1 fruit or nuts"},
	}
)

var foodTable = map[slot]map[diet][]food{
	slotBreakfast: {
		dietVegan: {
			bread,
			{name: "Peanut butter (2 tbsp)"},
			{name: "1 banana"},
			{name: "Oat milk (200ml)"},
		},
		dietVegetarian: {
			bread,
			{name: "2 scrambled eggs with cheese", lactoseFree: "2 scrambled eggs"},
			{name: "1 fruit (banana or apple)"},
			{name: "Coffee with milk", lactoseFree: "Coffee with lactose-free milk"},
		},
		dietOmnivore: {
			bread,
			{name: "2 scrambled eggs"},
			{name: "30g white cheese", lactoseFree: "30g lactose-free cheese"},
			{name: "1 fruit"},
			{name: "Coffee"},
		},
	},
	slotLunch: {
		dietVegan:      {rice, beans, {name: "Grilled tofu (100g)"}, salad, {name: "Sautéed vegetables"}},
		dietVegetarian: {rice, beans, {name: "2 boiled eggs or an omelette"}, salad, {name: "Mixed vegetables"}},
		dietOmnivore:   {rice, beans, {name: "150g grilled chicken"}, salad, {name: "Sautéed vegetables"}},
	},
	slotAfternoonSnack: {
		dietVegan:      {{name: "1 serving of fruit"}, {name: "30g nuts"}, {name: "Plant milk (200ml)"}},
		dietVegetarian: dairySnack,
		dietOmnivore:   dairySnack,
	},
	slotDinner: {
		dietVegan: {
			{name: "150g sweet potato"},
			{name: "Chickpeas (100g)"},
			salad,
			{name: "Roasted vegetables"},
			{name: "Olive oil (1 tbsp)"},
		},
		dietVegetarian: {
			{name: "150g sweet potato or cassava"},
			{name: "2-egg omelette with vegetables"},
			salad,
			{name: "Cottage cheese", lactoseFree: "Lactose-free cheese"},
		},
		dietOmnivore: {
			{name: "150g sweet potato"},
			{name: "150g fish or lean meat"},
			salad,
			{name: "Grilled vegetables"},
			{name: "Olive oil"},
		},
	},
	slotLateSnack: {
		dietVegan:      {{name: "Plant milk (200ml)"}, {name: "1 serving of berries"}},
		dietVegetarian: dairyLateSnack,
		dietOmnivore:   dairyLateSnack,
	},
}

func foodsFor(s slot, flags dietFlags) []string {
	items := foodTable[s][flags.diet]
	out := make([]string, 0, len(items))
	for _, f := range items {
		out = append(out, f.forFlags(flags))
	}
	return out
}
