package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	iface "MaskOutlineServer/interface"

	"github.com/stretchr/testify/assert"
)

func testDefaults() EngineParam {
	def := iface.DefaultOptions()
	return EngineParam{
		Threshold:         def.Threshold,
		CurveType:         string(def.CurveType),
		SimplifyTolerance: def.SimplifyTolerance,
		OverlapThreshold:  def.OverlapThreshold,
	}
}

func blockMaskJSON(size, x0, y0, block int) iface.MaskSpec {
	data := make([]float64, size*size)
	for y := y0; y < y0+block; y++ {
		for x := x0; x < x0+block; x++ {
			data[y*size+x] = 1
		}
	}
	return iface.MaskSpec{Width: size, Height: size, Data: data}
}

func TestPingRoute(t *testing.T) {
	r := setupRouter(testDefaults())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestOutlineRoute(t *testing.T) {
	r := setupRouter(testDefaults())

	t.Run("Test Block Mask", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{
			"mask":      blockMaskJSON(14, 2, 2, 10),
			"curveType": "straight",
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/outline", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data iface.PathResult `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		assert.Equal(t, 1, resp.Data.Contours)
		assert.True(t, len(resp.Data.Path) > 0)
		assert.Equal(t, iface.PathMoveTo, resp.Data.Commands[0].Op)
	})

	t.Run("Test Empty Mask", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{
			"mask": iface.MaskSpec{Width: 5, Height: 5, Data: make([]float64, 25)},
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/outline", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data iface.PathResult `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		assert.Equal(t, 0, resp.Data.Contours)
		assert.Equal(t, "", resp.Data.Path)
	})

	t.Run("Test Short Data Rejected", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{
			"mask": iface.MaskSpec{Width: 5, Height: 5, Data: []float64{1, 0, 1}},
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/outline", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWorkerLifecycle(t *testing.T) {
	r := setupRouter(testDefaults())

	body, _ := json.Marshal(EngineParam{Description: "test engine"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/engines/init/2", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var initResp struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &initResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	assert.Len(t, initResp.Data, 2)

	t.Run("Test Check", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/engines/check/"+initResp.Data[0], nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "test engine")
		assert.Contains(t, w.Body.String(), fmt.Sprintf("%d", IDLE))
	})

	t.Run("Test Check Unknown", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/engines/check/no-such-id", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Test Alloc And Release", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/engines/alloc", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var allocResp struct {
			SessionID string `json:"sessionID"`
			WorkerID  string `json:"workerID"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &allocResp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		assert.NotEmpty(t, allocResp.SessionID)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("POST", "/api/engines/"+allocResp.SessionID+"/release", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("POST", "/api/engines/"+allocResp.SessionID+"/release", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
