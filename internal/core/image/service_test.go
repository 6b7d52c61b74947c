package image

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

// encodeTestPNG 產生一張小的測試圖片 data URI
func encodeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestProcessImage(t *testing.T) {
	svc := NewService(1 << 20)

	out, err := svc.ProcessImage(encodeTestPNG(t))
	if err != nil {
		t.Fatalf("ProcessImage: %v", err)
	}
	// 輸出統一為 JPEG data URI
	if !strings.HasPrefix(out, "data:image/jpeg;base64,") {
		t.Errorf("unexpected output prefix: %.40s", out)
	}

	payload := strings.TrimPrefix(out, "data:image/jpeg;base64,")
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		t.Errorf("output is not valid base64: %v", err)
	}
}

func TestProcessImageRejectsInvalidInput(t *testing.T) {
	svc := NewService(1 << 20)

	tests := []string{
		"just some text",
		"data:image/png;base64",              // 缺 payload
		"data:image/png;base64,!!!invalid!!", // 非法 base64
	}

	for _, input := range tests {
		if _, err := svc.ProcessImage(input); err == nil {
			t.Errorf("ProcessImage(%q) expected error", input)
		}
	}
}

func TestProcessImageSizeLimit(t *testing.T) {
	svc := NewService(8) // 限制 8 bytes，必定超標

	if _, err := svc.ProcessImage(encodeTestPNG(t)); err == nil {
		t.Error("expected size limit error")
	}
}

func TestValidateImage(t *testing.T) {
	svc := NewService(1 << 20)

	if err := svc.ValidateImage(encodeTestPNG(t)); err != nil {
		t.Errorf("ValidateImage: %v", err)
	}
	if err := svc.ValidateImage("not an image"); err == nil {
		t.Error("expected validation error")
	}
}
