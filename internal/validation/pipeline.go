package validation

import (
	"context"
	"fmt"
	"net/http"
)

// Stage names the orchestrator's states. Transitions are strictly
// sequential: SHAPE -> DOMAIN -> REFERENCES -> READY, with FAILED reachable
// from any stage. On a rejected verdict, Stage records where the pipeline
// stopped.
type Stage string

const (
	StageShape      Stage = "SHAPE"
	StageDomain     Stage = "DOMAIN"
	StageReferences Stage = "REFERENCES"
	StageReady      Stage = "READY"
)

// Verdict is the structured outcome of validating one write request. When
// Accepted, Payload is the caller's original payload, untouched. When
// rejected, Status is an HTTP status hint (400 for shape/domain failures and
// malformed references, 404 for dangling references) and the field lists
// carry per-field detail.
type Verdict struct {
	Accepted      bool
	Stage         Stage
	Status        int
	Message       string
	Detail        string
	MissingFields []string
	InvalidFields []string
	Payload       Payload
}

// RefRule binds a set of identifiers extracted from a payload to the store
// they must resolve against, with the messages reported on failure.
type RefRule struct {
	IDs              func(Payload) []string
	Store            ReferenceStore
	MalformedMessage string
	NotFoundMessage  string
}

// Pipeline validates write payloads for one resource kind, short-circuiting
// at the first failing stage. Stages after a failure never run, so a payload
// with both a missing field and a bad date only reports the missing field.
type Pipeline struct {
	rules *RuleSet
	refs  []RefRule
}

// NewPipeline composes a rule table with the reference rules for its kind.
func NewPipeline(rules *RuleSet, refs ...RefRule) *Pipeline {
	return &Pipeline{rules: rules, refs: refs}
}

// NewRecipePipeline validates recipe payloads. Recipes reference nothing.
func NewRecipePipeline() *Pipeline {
	return NewPipeline(RecipeRules())
}

// NewUserPipeline validates user payloads.
func NewUserPipeline() *Pipeline {
	return NewPipeline(UserRules())
}

// NewMealPlanPipeline validates meal plan payloads. The owning user resolves
// against the users store and every entry's recipe against the recipes
// store, in that order.
func NewMealPlanPipeline(users, recipes ReferenceStore) *Pipeline {
	return NewPipeline(MealPlanRules(),
		RefRule{
			IDs:              ownerID,
			Store:            users,
			MalformedMessage: "user must be a valid id",
			NotFoundMessage:  "Referenced user not found",
		},
		RefRule{
			IDs:              entryRecipeIDs,
			Store:            recipes,
			MalformedMessage: "Invalid recipe id in entries",
			NotFoundMessage:  "One or more recipe references were not found",
		},
	)
}

// NewShoppingListPipeline validates shopping list payloads. The owning user
// resolves against the users store.
func NewShoppingListPipeline(users ReferenceStore) *Pipeline {
	return NewPipeline(ShoppingListRules(),
		RefRule{
			IDs:              ownerID,
			Store:            users,
			MalformedMessage: "user must be a valid id",
			NotFoundMessage:  "Referenced user not found",
		},
	)
}

// Validate runs the stages in order against the payload. The returned error
// is reserved for store failures during reference resolution; every
// validation failure arrives as a rejected verdict, never an error.
func (pl *Pipeline) Validate(ctx context.Context, payload Payload) (*Verdict, error) {
	if missing := MissingFields(payload, pl.rules.Required); len(missing) > 0 {
		return &Verdict{
			Stage:         StageShape,
			Status:        http.StatusBadRequest,
			Message:       "Missing required fields",
			MissingFields: missing,
		}, nil
	}

	for _, check := range pl.rules.Domain {
		if issue := check(payload); issue != nil {
			return &Verdict{
				Stage:         StageDomain,
				Status:        http.StatusBadRequest,
				Message:       issue.Message,
				InvalidFields: issue.Fields,
			}, nil
		}
	}

	for _, ref := range pl.refs {
		result, err := ResolveReferences(ctx, ref.IDs(payload), ref.Store)
		if err != nil {
			return nil, err
		}
		if result.OK {
			continue
		}
		if result.Reason == RefMalformed {
			return &Verdict{
				Stage:   StageReferences,
				Status:  http.StatusBadRequest,
				Message: ref.MalformedMessage,
			}, nil
		}
		return &Verdict{
			Stage:   StageReferences,
			Status:  http.StatusNotFound,
			Message: ref.NotFoundMessage,
			Detail:  fmt.Sprintf("%d of the referenced documents do not exist", result.Missing),
		}, nil
	}

	return &Verdict{Accepted: true, Stage: StageReady, Payload: payload}, nil
}

// stringID reads a payload value as an opaque identifier. Anything that is
// not a string comes back empty, which the store's identifier predicate will
// reject as malformed.
func stringID(v interface{}) string {
	s, _ := v.(string)
	return s
}

func ownerID(p Payload) []string {
	v, ok := p["user"]
	if !ok || v == nil {
		return nil
	}
	return []string{stringID(v)}
}

func entryRecipeIDs(p Payload) []string {
	entries, ok := p["entries"].([]interface{})
	if !ok {
		return nil
	}
	var ids []string
	for _, elem := range entries {
		entry, isMap := elem.(map[string]interface{})
		if !isMap {
			continue
		}
		if v, present := entry["recipe"]; present && hasValue(v, present) {
			ids = append(ids, stringID(v))
		}
	}
	return ids
}
