package validation

import (
	"fmt"
	"strings"

	"meal-mosaic/internal/models"
)

// Kind names a resource family.
type Kind string

const (
	KindRecipe       Kind = "recipe"
	KindUser         Kind = "user"
	KindMealPlan     Kind = "mealPlan"
	KindShoppingList Kind = "shoppingList"
)

// RuleSet is the declarative validation table for one resource kind: the
// required fields the shape stage checks and the ordered domain checks run
// after it. Every kind is described by one of these tables instead of a
// hand-copied validator function, so the "missing required field" logic
// cannot drift between kinds.
type RuleSet struct {
	Kind     Kind
	Required []string
	Domain   []Check
}

// RecipeRules describes recipe payloads. Recipes hold no references, so the
// table is shape and domain only.
func RecipeRules() *RuleSet {
	return &RuleSet{
		Kind: KindRecipe,
		Required: []string{
			"title", "cuisine", "prepTimeMinutes", "cookTimeMinutes",
			"servings", "ingredients", "steps",
		},
		Domain: []Check{
			Minimums("Numeric fields are invalid",
				Minimum{Field: "prepTimeMinutes", Min: 0},
				Minimum{Field: "cookTimeMinutes", Min: 0},
				Minimum{Field: "servings", Min: 1},
				Minimum{Field: "nutrition.calories", Min: 0},
				Minimum{Field: "nutrition.protein", Min: 0},
				Minimum{Field: "nutrition.carbs", Min: 0},
				Minimum{Field: "nutrition.fat", Min: 0},
			),
			Sequence("ingredients", "ingredients must include at least one item", ingredientElement),
			Sequence("steps", "steps must include at least one item", stepElement),
		},
	}
}

// UserRules describes user payloads.
func UserRules() *RuleSet {
	return &RuleSet{
		Kind:     KindUser,
		Required: []string{"username", "email"},
		Domain: []Check{
			Email("email", "email must be a valid email address"),
		},
	}
}

// MealPlanRules describes meal plan payloads. The date pair runs before the
// entries check so a reversed date range is reported no matter what else is
// wrong with the entries.
func MealPlanRules() *RuleSet {
	return &RuleSet{
		Kind:     KindMealPlan,
		Required: []string{"title", "user", "startDate", "endDate", "entries"},
		Domain: []Check{
			DatePair("startDate", "endDate",
				"startDate and endDate must be valid dates",
				"endDate must be on or after startDate"),
			Sequence("entries", "entries must include at least one meal slot", mealEntryElement),
		},
	}
}

// ShoppingListRules describes shopping list payloads.
func ShoppingListRules() *RuleSet {
	return &RuleSet{
		Kind:     KindShoppingList,
		Required: []string{"title", "user", "items"},
		Domain: []Check{
			Sequence("items", "items must include at least one entry", shoppingItemElement),
			OptionalDate("dueDate", "dueDate must be a valid date when provided"),
		},
	}
}

func ingredientElement(i int, elem interface{}) string {
	item, ok := elem.(map[string]interface{})
	if !ok {
		return "each ingredient requires a name"
	}
	name, _ := item["name"].(string)
	if strings.TrimSpace(name) == "" {
		return "each ingredient requires a name"
	}
	if q, present := item["quantity"]; present && q != nil {
		if n, numeric := coerceNumber(q); numeric && n < 0 {
			return fmt.Sprintf("ingredients[%d].quantity must be zero or greater", i)
		}
	}
	return ""
}

func stepElement(i int, elem interface{}) string {
	_ = i
	switch s := elem.(type) {
	case nil:
		return "steps cannot be empty"
	case string:
		if strings.TrimSpace(s) == "" {
			return "steps cannot be empty"
		}
	}
	return ""
}

func mealEntryElement(i int, elem interface{}) string {
	entry, ok := elem.(map[string]interface{})
	if !ok {
		return fmt.Sprintf("entries[%d] is required", i)
	}
	if _, dateOK := parseDate(entry["date"]); !dateOK {
		return fmt.Sprintf("entries[%d].date is required and must be a valid date", i)
	}
	mealType, _ := entry["mealType"].(string)
	if !validMealType(mealType) {
		return fmt.Sprintf("entries[%d].mealType must be one of: %s", i, strings.Join(models.MealTypes, ", "))
	}
	recipe, present := entry["recipe"]
	if !hasValue(recipe, present) {
		return fmt.Sprintf("entries[%d].recipe is required", i)
	}
	return ""
}

func shoppingItemElement(i int, elem interface{}) string {
	item, ok := elem.(map[string]interface{})
	if !ok {
		return fmt.Sprintf("items[%d].name is required", i)
	}
	name, _ := item["name"].(string)
	if strings.TrimSpace(name) == "" {
		return fmt.Sprintf("items[%d].name is required", i)
	}
	if q, present := item["quantity"]; present && q != nil {
		if n, numeric := coerceNumber(q); numeric && n < 0 {
			return fmt.Sprintf("items[%d].quantity must be zero or greater", i)
		}
	}
	return ""
}

// validMealType matches exactly; case variants are rejected.
func validMealType(v string) bool {
	for _, t := range models.MealTypes {
		if v == t {
			return true
		}
	}
	return false
}
