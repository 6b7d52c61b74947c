package inventory

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
	router.POST("/inventory/receipt", HandleReceipt)
	router.POST("/inventory/receipt/missing", HandleReceiptMissing)
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

func TestHandleReceipt(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/inventory/receipt", gin.H{
		"text": "Paneer | 500 | g | 180\nTomato | 3 | pcs | 30",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp ReceiptResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if resp.Added != 2 || len(resp.Items) != 2 {
		t.Fatalf("resp = %+v", resp)
	}
	// 兩行都成功解析，跳過數必須為零
	if resp.Skipped != 0 {
		t.Errorf("skipped = %d, want 0 (no line was skipped)", resp.Skipped)
	}

	paneer := resp.Items[0]
	if paneer.Name != "paneer" || paneer.Quantity != 500 {
		t.Errorf("paneer = %+v", paneer)
	}
	if paneer.PricePer100 != 36.0 {
		t.Errorf("PricePer100 = %v, want 36.0", paneer.PricePer100)
	}
	// 500 g 為高存量，保存期限走 paneer 分類
	if paneer.Status != "High" || paneer.StatusColor != "green" {
		t.Errorf("status = %q/%q", paneer.Status, paneer.StatusColor)
	}
	if paneer.ExpiryMinDays != 3 || paneer.ExpiryMaxDays != 6 {
		t.Errorf("expiry = %d-%d", paneer.ExpiryMinDays, paneer.ExpiryMaxDays)
	}

	tomato := resp.Items[1]
	if tomato.Quantity != 3 || tomato.Status != "Low" {
		t.Errorf("tomato = %+v", tomato)
	}
}

func TestHandleReceiptMissing(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/inventory/receipt/missing", gin.H{
		"text":     "Paneer | 200\nHoney | 2",
		"existing": []string{"Paneer"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp ReceiptResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Added != 1 || len(resp.Items) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	// 已在庫存的 paneer 行計入跳過
	if resp.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", resp.Skipped)
	}
	if resp.Items[0].Name != "honey" {
		t.Errorf("items[0] = %+v", resp.Items[0])
	}
}

func TestHandleReceiptRequiresInput(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/inventory/receipt", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleReceiptImageWithoutVision(t *testing.T) {
	// 視覺服務未注入時，影像路徑回 503
	router := newTestRouter()

	w := postJSON(t, router, "/inventory/receipt", gin.H{
		"image": "data:image/jpeg;base64,abcd",
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}
