package extract

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"recipe-extractor/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := common.InitLogger("error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.POST("/extract/recipe", HandleRecipe)
	router.POST("/extract/ingredients", HandleIngredients)
	router.POST("/extract/steps", HandleSteps)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const paneerRecipe = `Ingredients:
- 200g paneer
- 1 onion, sliced
- salt to taste

Steps:
1. Heat oil in a pan.
2. Add paneer and cook for 10 minutes.`

func TestHandleRecipe(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/extract/recipe", gin.H{
		"text": paneerRecipe,
		"options": gin.H{
			"jain_mode":   true,
			"unit_system": "imperial",
			"servings":    2,
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp RecipeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if len(resp.Ingredients) != 3 {
		t.Fatalf("ingredients = %+v", resp.Ingredients)
	}

	paneer := resp.Ingredients[0]
	if paneer.Name != "paneer" || paneer.Quantity != "200 g" {
		t.Errorf("paneer = %+v", paneer)
	}
	// 200 g → 7.05 oz → 兩人份 14.1 oz
	if paneer.DisplayQuantity != "14.1 oz" {
		t.Errorf("DisplayQuantity = %q, want %q", paneer.DisplayQuantity, "14.1 oz")
	}
	if paneer.Jain == nil || !paneer.Jain.Compatible {
		t.Errorf("paneer jain verdict = %+v", paneer.Jain)
	}

	onion := resp.Ingredients[1]
	if onion.Name != "onion" {
		t.Errorf("onion = %+v", onion)
	}
	if onion.Jain == nil || onion.Jain.Compatible {
		t.Errorf("onion jain verdict = %+v", onion.Jain)
	}
	if onion.Jain != nil && onion.Jain.Substitute == "" {
		t.Error("incompatible ingredient should carry a substitute")
	}

	wantSteps := []string{"Heat oil in a pan.", "Add paneer and cook for 10 minutes."}
	if len(resp.Steps) != len(wantSteps) {
		t.Fatalf("steps = %#v", resp.Steps)
	}
	for i := range wantSteps {
		if resp.Steps[i] != wantSteps[i] {
			t.Errorf("steps[%d] = %q, want %q", i, resp.Steps[i], wantSteps[i])
		}
	}

	if len(resp.Timers) != 1 || resp.Timers[0].Step != 2 || resp.Timers[0].Seconds != 600 {
		t.Errorf("timers = %+v", resp.Timers)
	}
}

func TestHandleRecipeDefaults(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/extract/recipe", gin.H{"text": paneerRecipe})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp RecipeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	// 預設公制單人份：顯示數量等於原始數量，無耆那判定
	if resp.Ingredients[0].DisplayQuantity != "200 g" {
		t.Errorf("DisplayQuantity = %q", resp.Ingredients[0].DisplayQuantity)
	}
	if resp.Ingredients[0].Jain != nil {
		t.Errorf("jain verdict should be absent, got %+v", resp.Ingredients[0].Jain)
	}
}

func TestHandleRecipeVideoID(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/extract/recipe", gin.H{
		"text": "Try this https://youtu.be/dQw4w9WgXcQ\nIngredients:\n- 200g paneer",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp RecipeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q", resp.VideoID)
	}
}

func TestHandleIngredientsAllergen(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/extract/ingredients", gin.H{
		"text": "Ingredients:\n- 200g paneer\n- 2 tomatoes",
		"options": gin.H{
			"allergies": []string{"paneer"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp IngredientsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("count = %d, ingredients = %+v", resp.Count, resp.Ingredients)
	}
	if !resp.Ingredients[0].Allergen {
		t.Error("paneer should be flagged as allergen")
	}
	if resp.Ingredients[1].Allergen {
		t.Error("tomatoes should not be flagged as allergen")
	}
}

func TestHandleSteps(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/extract/steps", gin.H{
		"text": "Steps:\n1. Boil water for 5 minutes\n2. Add rice",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp StepsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("count = %d, steps = %#v", resp.Count, resp.Steps)
	}
	if len(resp.Timers) != 1 || resp.Timers[0].Step != 1 || resp.Timers[0].Seconds != 300 {
		t.Errorf("timers = %+v", resp.Timers)
	}
}

// 沒有任何步驟帶計時器時，timers 仍須序列化為 [] 而非 null
func TestHandleStepsNoTimers(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/extract/steps", gin.H{
		"text": "Steps:\n1. Wash the rice\n2. Drain well",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if string(raw["timers"]) != "[]" {
		t.Errorf("timers = %s, want []", raw["timers"])
	}
}

func TestHandleRecipeBadRequest(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/extract/recipe", gin.H{"no_text": true})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
