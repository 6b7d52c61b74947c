package unit

import (
	"testing"

	"recipe-extractor/internal/pkg/common"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		qty    string
		target common.UnitSystem
		want   string
	}{
		{"500 g", common.UnitSystemImperial, "17.64 oz"},
		{"500 g", common.UnitSystemMetric, "500 g"},
		{"2 kg", common.UnitSystemImperial, "4.41 lbs"},
		{"500 ml", common.UnitSystemImperial, "16.91 fl oz"},
		{"1 l", common.UnitSystemImperial, "4.23 cups"},
		{"100 grams", common.UnitSystemImperial, "3.53 oz"},

		// 乘數 1.0：量值不變，單位標籤正規化為單數
		{"2 pcs", common.UnitSystemImperial, "2 pcs"},
		{"3 cups", common.UnitSystemImperial, "3 cup"},

		// 定性片語原樣通過
		{"to taste", common.UnitSystemImperial, "to taste"},
		{"as needed", common.UnitSystemImperial, "as needed"},
		{"a pinch", common.UnitSystemImperial, "a pinch"},

		// 解析不了的一律原樣通過
		{"3 sprigs", common.UnitSystemImperial, "3 sprigs"},
		{"handful coriander", common.UnitSystemImperial, "handful coriander"},
		{"200", common.UnitSystemImperial, "200"},
	}

	for _, tt := range tests {
		if got := Convert(tt.qty, tt.target); got != tt.want {
			t.Errorf("Convert(%q, %s) = %q, want %q", tt.qty, tt.target, got, tt.want)
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		qty      string
		servings int
		want     string
	}{
		// 縮放結果固定一位小數
		{"3 cups", 2, "6.0 cups"},
		{"2.5 kg", 3, "7.5 kg"},
		{"200 g", 4, "800.0 g"},
		{"5", 2, "10.0"},

		// servings <= 1 不動作
		{"3 cups", 1, "3 cups"},
		{"3 cups", 0, "3 cups"},

		// 解析不了的原樣保留
		{"to taste", 2, "to taste"},
		{"as needed", 3, "as needed"},
	}

	for _, tt := range tests {
		if got := Scale(tt.qty, tt.servings); got != tt.want {
			t.Errorf("Scale(%q, %d) = %q, want %q", tt.qty, tt.servings, got, tt.want)
		}
	}
}
