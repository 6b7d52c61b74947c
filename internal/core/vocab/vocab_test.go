package vocab

import (
	"strings"
	"testing"
)

func TestIsValidFoodIngredient(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"paneer", true},
		{"tomato", true},
		{"fresh tomato slices", true}, // 複合片語：名稱包含詞彙
		{"tomat", true},               // 截斷結果：詞彙包含名稱
		{"turmeric powder", true},
		{"ab", false},            // 太短
		{"heat the oil", false},  // 烹飪動詞開頭
		{"add salt", false},      // 烹飪動詞開頭
		{"stir well", false},     // 烹飪動詞開頭
		{"qwxzzyk", false},       // 不在詞彙表
		{"   milk   ", true},     // 前後空白
		{"PANEER", true},         // 大小寫
	}

	for _, tt := range tests {
		if got := IsValidFoodIngredient(tt.name); got != tt.want {
			t.Errorf("IsValidFoodIngredient(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsJainCompatible(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"paneer", true},
		{"rice", true},
		{"onion", false},
		{"red onion", false},
		{"potato", false},
		{"garlic", false},
		{"ginger garlic paste", false},
		{"turmeric", false},        // 新鮮薑黃根受限
		{"turmeric powder", true},  // 粉狀加工品例外
		{"haldi powder", false},    // 例外只認 "turmeric"+"powder" 組合
		{"peanut", false},
		{"Onion", false}, // 大小寫
	}

	for _, tt := range tests {
		if got := IsJainCompatible(tt.name); got != tt.want {
			t.Errorf("IsJainCompatible(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestJainSubstitute(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		// 複合詞條目在單項之前宣告，必須先命中
		{"ginger garlic paste", "green chilli paste with asafoetida (hing)"},
		{"potato", "raw banana (kachha kela), arrowroot (ararot), or sweet corn"},
		{"onion", "asafoetida (hing) for flavor, or finely chopped cabbage"},
		{"ginger", "dry ginger powder (sonth) or green chilli for heat"},
		{"peanut", "cashew, almond, or melon seeds"},
		{"unknown thing", DefaultJainSubstitute},
	}

	for _, tt := range tests {
		if got := JainSubstitute(tt.name); got != tt.want {
			t.Errorf("JainSubstitute(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCheckJain(t *testing.T) {
	verdict := CheckJain("Onion")
	if verdict.Name != "onion" {
		t.Errorf("Name = %q, want %q", verdict.Name, "onion")
	}
	if verdict.Compatible {
		t.Error("onion should not be compatible")
	}
	if !strings.Contains(verdict.Substitute, "asafoetida") {
		t.Errorf("unexpected substitute %q", verdict.Substitute)
	}

	verdict = CheckJain("paneer")
	if !verdict.Compatible {
		t.Error("paneer should be compatible")
	}
	if verdict.Substitute != "" {
		t.Errorf("compatible ingredient should carry no substitute, got %q", verdict.Substitute)
	}
}

func TestFoodTermCount(t *testing.T) {
	if n := FoodTermCount(); n < 200 {
		t.Errorf("FoodTermCount() = %d, want at least 200", n)
	}
}
