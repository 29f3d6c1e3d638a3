package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verifeed/verifeed/internal/common"
	"github.com/verifeed/verifeed/internal/imaging"
)

func validTensor() imaging.Tensor {
	rows := make([][][]float32, imaging.InputSize)
	for y := range rows {
		row := make([][]float32, imaging.InputSize)
		for x := range row {
			row[x] = []float32{0, 0, 0}
		}
		rows[y] = row
	}
	return imaging.Tensor{rows}
}

func TestTFServingClient_Predict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/models/xception:predict", r.URL.Path)

		var req predictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Inputs, 1)
		assert.Len(t, req.Inputs[0], imaging.InputSize)

		_ = json.NewEncoder(w).Encode(predictResponse{Outputs: [][]float64{{0.83}}})
	}))
	defer srv.Close()

	c := NewTFServingClient(srv.URL, "xception", time.Second)

	score, err := c.Predict(context.Background(), validTensor())
	require.NoError(t, err)
	assert.Equal(t, 0.83, score)
}

func TestTFServingClient_MalformedTensor(t *testing.T) {
	c := NewTFServingClient("http://127.0.0.1:1", "xception", time.Second)

	tests := []struct {
		name   string
		tensor imaging.Tensor
	}{
		{"nil tensor", nil},
		{"wrong batch", imaging.Tensor{nil, nil}},
		{"wrong height", imaging.Tensor{make([][][]float32, 10)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Predict(context.Background(), tc.tensor)
			assert.ErrorIs(t, err, common.ErrInference)
		})
	}
}

func TestTFServingClient_ServingError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "servable not found"})
	}))
	defer srv.Close()

	c := NewTFServingClient(srv.URL, "xception", time.Second)

	_, err := c.Predict(context.Background(), validTensor())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInference)
	assert.Contains(t, err.Error(), "servable not found")
}

func TestTFServingClient_ScoreOutOfRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(predictResponse{Outputs: [][]float64{{1.7}}})
	}))
	defer srv.Close()

	c := NewTFServingClient(srv.URL, "xception", time.Second)

	_, err := c.Predict(context.Background(), validTensor())
	assert.ErrorIs(t, err, common.ErrInference)
}

func TestTFServingClient_EmptyPrediction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(predictResponse{})
	}))
	defer srv.Close()

	c := NewTFServingClient(srv.URL, "xception", time.Second)

	_, err := c.Predict(context.Background(), validTensor())
	assert.ErrorIs(t, err, common.ErrInference)
}

func TestTFServingClient_ConnectionRefused(t *testing.T) {
	c := NewTFServingClient("http://127.0.0.1:1", "xception", 200*time.Millisecond)

	_, err := c.Predict(context.Background(), validTensor())
	assert.ErrorIs(t, err, common.ErrInference)
}
